package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

// DocsService is the public, read-only view of the blog.
type DocsService interface {
	Categories(ctx context.Context) ([]models.ArticleCategory, error)
	List(ctx context.Context, categoryID *uuid.UUID) ([]models.Article, error)
	// Read returns a published article with its tags and counts the view.
	Read(ctx context.Context, slug string) (*models.Article, error)
}

type docsService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewDocsService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, log zerolog.Logger) DocsService {
	return &docsService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		log:          log.With().Str("component", "docs").Logger(),
	}
}

func (s *docsService) Categories(ctx context.Context) ([]models.ArticleCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *docsService) List(ctx context.Context, categoryID *uuid.UUID) ([]models.Article, error) {
	return s.articleRepo.ListPublished(ctx, categoryID)
}

func (s *docsService) Read(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.IncrementViewCount(ctx, article.ID); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("Failed to count view")
	} else {
		article.ViewCount++
	}

	tags, err := s.articleRepo.Tags(ctx, article.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("Failed to load tags")
		tags = []models.ArticleTag{}
	}
	article.Tags = tags
	return article, nil
}
