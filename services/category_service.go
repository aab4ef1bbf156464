package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.ArticleCategory, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ArticleCategory, error)
	Create(ctx context.Context, req models.CategoryRequest) (*models.ArticleCategory, error)
	Update(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.ArticleCategory, error)
	// Delete removes the category; its articles stay, uncategorised.
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With().Str("component", "categories").Logger(),
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.ArticleCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*models.ArticleCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req models.CategoryRequest) (*models.ArticleCategory, error) {
	slug, err := slugFor(req.Slug, req.Name, "")
	if err != nil {
		return nil, err
	}
	category := &models.ArticleCategory{Name: req.Name, Slug: slug, Description: req.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.ArticleCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slug, err := slugFor(req.Slug, req.Name, category.Slug)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Slug = slug
	category.Description = req.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id.String()).Msg("Category deleted, articles detached")
	return nil
}
