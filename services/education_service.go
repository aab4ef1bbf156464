package services

import (
	"context"

	"github.com/google/uuid"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Education, error)
	Create(ctx context.Context, req models.EducationRequest) (*models.Education, error)
	Update(ctx context.Context, id uuid.UUID, req models.EducationRequest) (*models.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type educationService struct {
	educationRepo repositories.EducationRepository
}

func NewEducationService(educationRepo repositories.EducationRepository) EducationService {
	return &educationService{educationRepo: educationRepo}
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	return s.educationRepo.List(ctx)
}

func (s *educationService) Get(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	return s.educationRepo.GetByID(ctx, id)
}

func (s *educationService) Create(ctx context.Context, req models.EducationRequest) (*models.Education, error) {
	education := &models.Education{}
	if err := applyEducation(education, req); err != nil {
		return nil, err
	}
	if err := s.educationRepo.Create(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) Update(ctx context.Context, id uuid.UUID, req models.EducationRequest) (*models.Education, error) {
	education, err := s.educationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyEducation(education, req); err != nil {
		return nil, err
	}
	if err := s.educationRepo.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *educationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.educationRepo.Delete(ctx, id)
}

func applyEducation(education *models.Education, req models.EducationRequest) error {
	if !req.Status.Valid() {
		return models.ErrorValidation{
			Field:   "status",
			Message: "status must be one of Completed, In Progress, Planned, Certified",
		}
	}
	education.Course = trimSpace(req.Course)
	education.Institution = trimSpace(req.Institution)
	education.Status = req.Status
	education.Description = req.Description
	return nil
}
