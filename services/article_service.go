package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type ArticleService interface {
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ArticleDetail, error)
	Create(ctx context.Context, req models.ArticleRequest, authorID uuid.UUID) (*models.Article, error)
	Update(ctx context.Context, id uuid.UUID, req models.ArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// EditorData loads articles, categories and tags concurrently. A failing
	// source is reported in Failed and does not hide the others.
	EditorData(ctx context.Context) models.ArticleEditorData
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	now          func() time.Time
	log          zerolog.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	log zerolog.Logger,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		now:          time.Now,
		log:          log.With().Str("component", "articles").Logger(),
	}
}

func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.List(ctx)
}

func (s *articleService) Get(ctx context.Context, id uuid.UUID) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.articleRepo.TagIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ArticleDetail{Article: *article, TagIDs: tagIDs}, nil
}

func (s *articleService) Create(ctx context.Context, req models.ArticleRequest, authorID uuid.UUID) (*models.Article, error) {
	slug, err := slugFor(req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:    req.Title,
		Slug:     slug,
		Status:   models.StatusDraft,
		AuthorID: authorID,
	}
	if err := s.apply(ctx, article, req); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Create(ctx, article, req.TagIDs); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID.String()).Str("slug", article.Slug).Msg("Article created")
	return s.articleRepo.GetByID(ctx, article.ID)
}

// Update keeps the stored slug unless the request names a new one.
func (s *articleService) Update(ctx context.Context, id uuid.UUID, req models.ArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug, err := slugFor(req.Slug, req.Title, article.Slug)
	if err != nil {
		return nil, err
	}
	article.Slug = slug
	article.Title = req.Title
	if err := s.apply(ctx, article, req); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Update(ctx, article, req.TagIDs); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID.String()).Msg("Article updated")
	return s.articleRepo.GetByID(ctx, article.ID)
}

// apply copies the editable fields of req onto article and enforces the
// publication lifecycle: published_at is stamped on first publish and
// cleared when the article returns to draft.
func (s *articleService) apply(ctx context.Context, article *models.Article, req models.ArticleRequest) error {
	if err := s.checkReferences(ctx, req); err != nil {
		return err
	}

	now := s.now().UTC()
	article.Summary = req.Summary
	article.Content = req.Content
	article.FeaturedImageURL = req.FeaturedImageURL
	article.CategoryID = req.CategoryID
	article.Category = nil
	article.Status = req.Status
	article.UpdatedAt = now

	switch req.Status {
	case models.StatusPublished:
		if article.PublishedAt == nil {
			article.PublishedAt = &now
		}
	default:
		article.PublishedAt = nil
	}
	return nil
}

func (s *articleService) checkReferences(ctx context.Context, req models.ArticleRequest) error {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			var notFound models.ErrorNotFound
			if errors.As(err, &notFound) {
				return models.ErrorValidation{Field: "category_id", Message: "category does not exist"}
			}
			return err
		}
	}

	if len(req.TagIDs) == 0 {
		return nil
	}
	tags, err := s.tagRepo.GetByIDs(ctx, req.TagIDs)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]bool, len(tags))
	for _, tag := range tags {
		known[tag.ID] = true
	}
	for _, id := range req.TagIDs {
		if !known[id] {
			return models.ErrorValidation{Field: "tag_ids", Message: "tag " + id.String() + " does not exist"}
		}
	}
	return nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("article_id", id.String()).Msg("Article deleted")
	return nil
}

func (s *articleService) EditorData(ctx context.Context) models.ArticleEditorData {
	var data models.ArticleEditorData
	var articleErr, catErr, tagErr error

	var g errgroup.Group
	g.Go(func() error {
		data.Articles, articleErr = s.articleRepo.List(ctx)
		return nil
	})
	g.Go(func() error {
		data.Categories, catErr = s.categoryRepo.List(ctx)
		return nil
	})
	g.Go(func() error {
		data.Tags, tagErr = s.tagRepo.List(ctx)
		return nil
	})
	_ = g.Wait()

	data.Failed = []string{}
	if articleErr != nil {
		data.Articles = []models.Article{}
		data.Failed = append(data.Failed, "articles")
		s.log.Warn().Err(articleErr).Msg("Failed to load articles")
	}
	if catErr != nil {
		data.Categories = []models.ArticleCategory{}
		data.Failed = append(data.Failed, "categories")
		s.log.Warn().Err(catErr).Msg("Failed to load categories")
	}
	if tagErr != nil {
		data.Tags = []models.ArticleTag{}
		data.Failed = append(data.Failed, "tags")
		s.log.Warn().Err(tagErr).Msg("Failed to load tags")
	}
	return data
}
