package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

// PortfolioService assembles the public marketing sections.
type PortfolioService interface {
	// Overview loads every section concurrently. Sections that fail are
	// listed in Failed and left empty.
	Overview(ctx context.Context) models.Overview
	SkillGroups(ctx context.Context) ([]models.SkillGroup, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Education(ctx context.Context) ([]models.EducationEntry, error)
	Contacts(ctx context.Context) ([]models.ContactLink, error)
}

type portfolioService struct {
	skillRepo     repositories.SkillRepository
	projectRepo   repositories.ProjectRepository
	educationRepo repositories.EducationRepository
	contactRepo   repositories.ContactRepository
	profile       ProfileService
	log           zerolog.Logger
}

func NewPortfolioService(
	skillRepo repositories.SkillRepository,
	projectRepo repositories.ProjectRepository,
	educationRepo repositories.EducationRepository,
	contactRepo repositories.ContactRepository,
	profile ProfileService,
	log zerolog.Logger,
) PortfolioService {
	return &portfolioService{
		skillRepo:     skillRepo,
		projectRepo:   projectRepo,
		educationRepo: educationRepo,
		contactRepo:   contactRepo,
		profile:       profile,
		log:           log.With().Str("component", "portfolio").Logger(),
	}
}

func (s *portfolioService) Overview(ctx context.Context) models.Overview {
	var overview models.Overview
	errs := make([]error, 5)

	var g errgroup.Group
	g.Go(func() error {
		overview.ProfilePicture, errs[0] = s.profile.Current(ctx)
		return nil
	})
	g.Go(func() error {
		overview.Skills, errs[1] = s.SkillGroups(ctx)
		return nil
	})
	g.Go(func() error {
		overview.Projects, errs[2] = s.Projects(ctx)
		return nil
	})
	g.Go(func() error {
		overview.Education, errs[3] = s.Education(ctx)
		return nil
	})
	g.Go(func() error {
		overview.Contacts, errs[4] = s.Contacts(ctx)
		return nil
	})
	_ = g.Wait()

	sections := []string{"profile_picture", "skills", "projects", "education", "contacts"}
	overview.Failed = []string{}
	for i, err := range errs {
		if err == nil {
			continue
		}
		overview.Failed = append(overview.Failed, sections[i])
		s.log.Warn().Err(err).Str("section", sections[i]).Msg("Failed to load section")
	}

	if overview.Skills == nil {
		overview.Skills = []models.SkillGroup{}
	}
	if overview.Projects == nil {
		overview.Projects = []models.Project{}
	}
	if overview.Education == nil {
		overview.Education = []models.EducationEntry{}
	}
	if overview.Contacts == nil {
		overview.Contacts = []models.ContactLink{}
	}
	return overview
}

// SkillGroups groups skills by category name, in category order.
func (s *portfolioService) SkillGroups(ctx context.Context) ([]models.SkillGroup, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupSkills(skills), nil
}

func (s *portfolioService) Projects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *portfolioService) Education(ctx context.Context) ([]models.EducationEntry, error) {
	rows, err := s.educationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]models.EducationEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.EducationEntry{Education: row, Icon: models.EducationIcon(row.Status)})
	}
	return entries, nil
}

func (s *portfolioService) Contacts(ctx context.Context) ([]models.ContactLink, error) {
	rows, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	links := make([]models.ContactLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, ContactLink(row))
	}
	return links, nil
}

// GroupSkills folds skills, already ordered by category, into one group per
// category in first-seen order.
func GroupSkills(skills []models.Skill) []models.SkillGroup {
	groups := []models.SkillGroup{}
	index := map[string]int{}
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, models.SkillGroup{
				Title:  skill.Category,
				Icon:   models.SkillGroupIcon(skill.Category),
				Skills: []string{},
			})
		}
		groups[i].Skills = append(groups[i].Skills, skill.Name)
	}
	return groups
}
