package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, req models.ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, req models.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, req models.ProjectRequest) (*models.Project, error) {
	project := &models.Project{}
	applyProject(project, req)
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req models.ProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProject(project, req)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projectRepo.Delete(ctx, id)
}

// applyProject copies req onto project. Technologies are trimmed of blanks and
// never nil, since the column is NOT NULL.
func applyProject(project *models.Project, req models.ProjectRequest) {
	technologies := pq.StringArray{}
	for _, tech := range req.Technologies {
		if tech = trimSpace(tech); tech != "" {
			technologies = append(technologies, tech)
		}
	}
	project.Title = req.Title
	project.Description = req.Description
	project.Technologies = technologies
	project.Link = req.Link
	project.ImageURL = req.ImageURL
}
