package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

type TagRepository interface {
	List(ctx context.Context) ([]models.ArticleTag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleTag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTag, error)
	Create(ctx context.Context, tag *models.ArticleTag) error
	Update(ctx context.Context, tag *models.ArticleTag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagRepository struct {
	crud[models.ArticleTag]
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{crud[models.ArticleTag]{db: db, entity: "tag", order: "name asc"}}
}

func (r *tagRepository) List(ctx context.Context) ([]models.ArticleTag, error) {
	return r.list(ctx)
}

func (r *tagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleTag, error) {
	return r.get(ctx, id)
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ArticleTag, error) {
	tags := []models.ArticleTag{}
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, translate(err, "tag")
}

func (r *tagRepository) Create(ctx context.Context, tag *models.ArticleTag) error {
	return r.create(ctx, tag)
}

func (r *tagRepository) Update(ctx context.Context, tag *models.ArticleTag) error {
	return r.update(ctx, tag, "name", "slug", "description")
}

// Delete removes the tag together with every article relation naming it.
func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTagRelation{}).Error; err != nil {
			return translate(err, "article tag")
		}
		res := tx.Where("id = ?", id).Delete(&models.ArticleTag{})
		if res.Error != nil {
			return translate(res.Error, "tag")
		}
		if res.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "tag not found"}
		}
		return nil
	})
}
