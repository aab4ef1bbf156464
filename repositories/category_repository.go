package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.ArticleCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleCategory, error)
	Create(ctx context.Context, category *models.ArticleCategory) error
	Update(ctx context.Context, category *models.ArticleCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	crud[models.ArticleCategory]
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{crud[models.ArticleCategory]{db: db, entity: "category", order: "name asc"}}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.ArticleCategory, error) {
	return r.list(ctx)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleCategory, error) {
	return r.get(ctx, id)
}

func (r *categoryRepository) Create(ctx context.Context, category *models.ArticleCategory) error {
	return r.create(ctx, category)
}

func (r *categoryRepository) Update(ctx context.Context, category *models.ArticleCategory) error {
	return r.update(ctx, category, "name", "slug", "description")
}

// Delete detaches the category's articles before removing it, so no article
// is left pointing at a missing category.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Article{}).
			Where("category_id = ?", id).
			UpdateColumn("category_id", nil).Error
		if err != nil {
			return translate(err, "article")
		}
		res := tx.Where("id = ?", id).Delete(&models.ArticleCategory{})
		if res.Error != nil {
			return translate(res.Error, "category")
		}
		if res.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "category not found"}
		}
		return nil
	})
}
