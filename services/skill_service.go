package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	Create(ctx context.Context, req models.SkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id uuid.UUID, req models.SkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.List(ctx)
}

func (s *skillService) Get(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	return s.skillRepo.GetByID(ctx, id)
}

func (s *skillService) Create(ctx context.Context, req models.SkillRequest) (*models.Skill, error) {
	skill := &models.Skill{}
	if err := applySkill(skill, req); err != nil {
		return nil, err
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, req models.SkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySkill(skill, req); err != nil {
		return nil, err
	}
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.skillRepo.Delete(ctx, id)
}

func applySkill(skill *models.Skill, req models.SkillRequest) error {
	icon, err := checkIcon(req.Icon, models.SkillIcons)
	if err != nil {
		return err
	}
	skill.Category = trimSpace(req.Category)
	skill.Name = trimSpace(req.Name)
	skill.Icon = icon
	return nil
}

type SkillCategoryService interface {
	List(ctx context.Context) ([]models.SkillCategory, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SkillCategory, error)
	// Create appends the category after the current last one unless the
	// request pins a display order.
	Create(ctx context.Context, req models.SkillCategoryRequest) (*models.SkillCategory, error)
	Update(ctx context.Context, id uuid.UUID, req models.SkillCategoryRequest) (*models.SkillCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillCategoryService struct {
	categoryRepo repositories.SkillCategoryRepository
}

func NewSkillCategoryService(categoryRepo repositories.SkillCategoryRepository) SkillCategoryService {
	return &skillCategoryService{categoryRepo: categoryRepo}
}

func (s *skillCategoryService) List(ctx context.Context) ([]models.SkillCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *skillCategoryService) Get(ctx context.Context, id uuid.UUID) (*models.SkillCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *skillCategoryService) Create(ctx context.Context, req models.SkillCategoryRequest) (*models.SkillCategory, error) {
	icon, err := checkIcon(req.Icon, models.SkillIcons)
	if err != nil {
		return nil, err
	}

	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else {
		highest, err := s.categoryRepo.MaxDisplayOrder(ctx)
		if err != nil {
			return nil, err
		}
		order = highest + 1
	}

	category := &models.SkillCategory{Name: trimSpace(req.Name), Icon: icon, DisplayOrder: order}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *skillCategoryService) Update(ctx context.Context, id uuid.UUID, req models.SkillCategoryRequest) (*models.SkillCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	icon, err := checkIcon(req.Icon, models.SkillIcons)
	if err != nil {
		return nil, err
	}
	category.Name = trimSpace(req.Name)
	category.Icon = icon
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *skillCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}

func checkIcon(icon string, allowed []string) (string, error) {
	normalized, ok := models.NormalizeIcon(trimSpace(icon), allowed)
	if !ok {
		return "", models.ErrorValidation{Field: "icon", Message: "unknown icon " + icon}
	}
	return normalized, nil
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
