package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

// Repositories holds every repository over one connection.
type Repositories struct {
	Article       ArticleRepository
	Category      CategoryRepository
	Tag           TagRepository
	Project       ProjectRepository
	Skill         SkillRepository
	SkillCategory SkillCategoryRepository
	Education     EducationRepository
	Contact       ContactRepository
	Message       MessageRepository
	User          UserRepository
	UserRole      UserRoleRepository
	Session       SessionRepository
	Objects       ObjectStore
}

// New creates all repositories with the given database connection.
// publicBaseURL prefixes object-store public URLs.
func New(db *gorm.DB, publicBaseURL string) *Repositories {
	return &Repositories{
		Article:       NewArticleRepository(db),
		Category:      NewCategoryRepository(db),
		Tag:           NewTagRepository(db),
		Project:       NewProjectRepository(db),
		Skill:         NewSkillRepository(db),
		SkillCategory: NewSkillCategoryRepository(db),
		Education:     NewEducationRepository(db),
		Contact:       NewContactRepository(db),
		Message:       NewMessageRepository(db),
		User:          NewUserRepository(db),
		UserRole:      NewUserRoleRepository(db),
		Session:       NewSessionRepository(db),
		Objects:       NewObjectStore(db, publicBaseURL),
	}
}

// translate maps gorm sentinel errors onto the typed errors handlers understand.
func translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrorNotFound{Message: entity + " not found"}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrorConflict{Message: entity + " already exists"}
	default:
		return err
	}
}

// crud implements the list/get/create/update/delete shape shared by the
// simple collections.
type crud[T any] struct {
	db     *gorm.DB
	entity string
	order  string
}

func (r crud[T]) list(ctx context.Context) ([]T, error) {
	rows := []T{}
	err := r.db.WithContext(ctx).Order(r.order).Find(&rows).Error
	return rows, translate(err, r.entity)
}

func (r crud[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, r.entity)
	}
	return &row, nil
}

func (r crud[T]) create(ctx context.Context, row *T) error {
	return translate(r.db.WithContext(ctx).Create(row).Error, r.entity)
}

// update writes the named columns of row, whose primary key must be set.
func (r crud[T]) update(ctx context.Context, row *T, columns ...string) error {
	res := r.db.WithContext(ctx).Model(row).Select(columns).Updates(row)
	if res.Error != nil {
		return translate(res.Error, r.entity)
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Message: r.entity + " not found"}
	}
	return nil
}

func (r crud[T]) delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error, r.entity)
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Message: r.entity + " not found"}
	}
	return nil
}
