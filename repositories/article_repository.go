package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	ListPublished(ctx context.Context, categoryID *uuid.UUID) ([]models.Article, error)
	ListPublishedForSitemap(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	TagIDs(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error)
	Tags(ctx context.Context, articleID uuid.UUID) ([]models.ArticleTag, error)
	Create(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error
	Update(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// articleColumns are the columns an admin save writes. view_count and
// created_at are never overwritten by an edit.
var articleColumns = []string{
	"title", "slug", "summary", "content", "featured_image_url",
	"category_id", "status", "published_at", "updated_at", "author_id",
}

func (r *articleRepository) List(ctx context.Context) ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at desc").
		Find(&articles).Error
	return articles, translate(err, "article")
}

func (r *articleRepository) ListPublished(ctx context.Context, categoryID *uuid.UUID) ([]models.Article, error) {
	articles := []models.Article{}
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", models.StatusPublished)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("published_at desc").Find(&articles).Error
	return articles, translate(err, "article")
}

func (r *articleRepository) ListPublishedForSitemap(ctx context.Context) ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.WithContext(ctx).
		Select("id", "slug", "status", "updated_at", "published_at").
		Where("status = ?", models.StatusPublished).
		Order("published_at desc").
		Find(&articles).Error
	return articles, translate(err, "article")
}

func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("Category").First(&article, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "article")
	}
	return &article, nil
}

func (r *articleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&article).Error
	if err != nil {
		return nil, translate(err, "article")
	}
	return &article, nil
}

func (r *articleRepository) TagIDs(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.WithContext(ctx).
		Model(&models.ArticleTagRelation{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &ids).Error
	return ids, translate(err, "article tag")
}

func (r *articleRepository) Tags(ctx context.Context, articleID uuid.UUID) ([]models.ArticleTag, error) {
	tags := []models.ArticleTag{}
	err := r.db.WithContext(ctx).
		Joins("JOIN article_tag_relations ON article_tag_relations.tag_id = article_tags.id").
		Where("article_tag_relations.article_id = ?", articleID).
		Order("article_tags.name asc").
		Find(&tags).Error
	return tags, translate(err, "article tag")
}

// Create inserts the article and its tag relations in one transaction.
func (r *articleRepository) Create(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Category").Create(article).Error; err != nil {
			return translate(err, "article")
		}
		return insertRelations(tx, article.ID, tagIDs)
	})
}

// Update writes the article and fully replaces its tag relations: every
// existing relation is deleted, then the given set is inserted. Both steps
// share the transaction of the row write.
func (r *articleRepository) Update(ctx context.Context, article *models.Article, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(article).Select(articleColumns).Omit("Category").Updates(article)
		if res.Error != nil {
			return translate(res.Error, "article")
		}
		if res.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "article not found"}
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.ArticleTagRelation{}).Error; err != nil {
			return translate(err, "article tag")
		}
		return insertRelations(tx, article.ID, tagIDs)
	})
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTagRelation{}).Error; err != nil {
			return translate(err, "article tag")
		}
		res := tx.Where("id = ?", id).Delete(&models.Article{})
		if res.Error != nil {
			return translate(res.Error, "article")
		}
		if res.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "article not found"}
		}
		return nil
	})
}

// IncrementViewCount adds exactly one view without touching updated_at.
func (r *articleRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return translate(res.Error, "article")
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Message: "article not found"}
	}
	return nil
}

func insertRelations(tx *gorm.DB, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(tagIDs))
	relations := make([]models.ArticleTagRelation, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, dup := seen[tagID]; dup {
			continue
		}
		seen[tagID] = struct{}{}
		relations = append(relations, models.ArticleTagRelation{ArticleID: articleID, TagID: tagID})
	}
	return translate(tx.Create(&relations).Error, "article tag")
}
