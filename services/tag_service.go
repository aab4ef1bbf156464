package services

import (
	"context"

	"github.com/google/uuid"

	"portfolio-cms/helper"
	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type TagService interface {
	List(ctx context.Context) ([]models.ArticleTag, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ArticleTag, error)
	Create(ctx context.Context, req models.TagRequest) (*models.ArticleTag, error)
	Update(ctx context.Context, id uuid.UUID, req models.TagRequest) (*models.ArticleTag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) List(ctx context.Context) ([]models.ArticleTag, error) {
	return s.tagRepo.List(ctx)
}

func (s *tagService) Get(ctx context.Context, id uuid.UUID) (*models.ArticleTag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *tagService) Create(ctx context.Context, req models.TagRequest) (*models.ArticleTag, error) {
	slug, err := slugFor(req.Slug, req.Name, "")
	if err != nil {
		return nil, err
	}
	tag := &models.ArticleTag{Name: req.Name, Slug: slug, Description: req.Description}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, req models.TagRequest) (*models.ArticleTag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slug, err := slugFor(req.Slug, req.Name, tag.Slug)
	if err != nil {
		return nil, err
	}
	tag.Name = req.Name
	tag.Slug = slug
	tag.Description = req.Description
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tagRepo.Delete(ctx, id)
}

// slugFor picks the slug to store: an explicit one wins, then an existing
// one, then one derived from name.
func slugFor(explicit, name, existing string) (string, error) {
	var slug string
	switch {
	case explicit != "":
		slug = helper.Slugify(explicit)
	case existing != "":
		slug = existing
	default:
		slug = helper.Slugify(name)
	}
	if slug == "" {
		return "", models.ErrorValidation{Field: "slug", Message: "slug must contain at least one letter or digit"}
	}
	return slug, nil
}
