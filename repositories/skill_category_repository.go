package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

type SkillCategoryRepository interface {
	List(ctx context.Context) ([]models.SkillCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SkillCategory, error)
	MaxDisplayOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, category *models.SkillCategory) error
	Update(ctx context.Context, category *models.SkillCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillCategoryRepository struct {
	crud[models.SkillCategory]
}

func NewSkillCategoryRepository(db *gorm.DB) SkillCategoryRepository {
	return &skillCategoryRepository{crud[models.SkillCategory]{db: db, entity: "skill category", order: "display_order asc, name asc"}}
}

func (r *skillCategoryRepository) List(ctx context.Context) ([]models.SkillCategory, error) {
	return r.list(ctx)
}

func (r *skillCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SkillCategory, error) {
	return r.get(ctx, id)
}

// MaxDisplayOrder returns the highest display order in use, never below zero.
func (r *skillCategoryRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var highest sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&models.SkillCategory{}).
		Select("MAX(display_order)").
		Row().
		Scan(&highest)
	if err != nil {
		return 0, translate(err, "skill category")
	}
	if !highest.Valid || highest.Int64 < 0 {
		return 0, nil
	}
	return int(highest.Int64), nil
}

func (r *skillCategoryRepository) Create(ctx context.Context, category *models.SkillCategory) error {
	return r.create(ctx, category)
}

// Update saves the category. Skills reference their category by name, so a
// rename is carried over to them in the same transaction.
func (r *skillCategoryRepository) Update(ctx context.Context, category *models.SkillCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.SkillCategory
		if err := tx.First(&current, "id = ?", category.ID).Error; err != nil {
			return translate(err, "skill category")
		}
		err := tx.Model(category).Select("name", "icon", "display_order").Updates(category).Error
		if err != nil {
			return translate(err, "skill category")
		}
		if current.Name == category.Name {
			return nil
		}
		err = tx.Model(&models.Skill{}).
			Where("category = ?", current.Name).
			UpdateColumn("category", category.Name).Error
		return translate(err, "skill")
	})
}

func (r *skillCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
