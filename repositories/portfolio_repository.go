package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	crud[models.Project]
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{crud[models.Project]{db: db, entity: "project", order: "created_at desc"}}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return r.get(ctx, id)
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.create(ctx, project)
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.update(ctx, project, "title", "description", "technologies", "link", "image_url")
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillRepository struct {
	crud[models.Skill]
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{crud[models.Skill]{db: db, entity: "skill", order: "category asc, name asc"}}
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	return r.list(ctx)
}

func (r *skillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	return r.get(ctx, id)
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.create(ctx, skill)
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	return r.update(ctx, skill, "category", "name", "icon")
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error)
	Create(ctx context.Context, education *models.Education) error
	Update(ctx context.Context, education *models.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type educationRepository struct {
	crud[models.Education]
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{crud[models.Education]{db: db, entity: "education", order: "created_at desc"}}
}

func (r *educationRepository) List(ctx context.Context) ([]models.Education, error) {
	return r.list(ctx)
}

func (r *educationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	return r.get(ctx, id)
}

func (r *educationRepository) Create(ctx context.Context, education *models.Education) error {
	return r.create(ctx, education)
}

func (r *educationRepository) Update(ctx context.Context, education *models.Education) error {
	return r.update(ctx, education, "course", "institution", "status", "description")
}

func (r *educationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	crud[models.Contact]
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{crud[models.Contact]{db: db, entity: "contact", order: "created_at asc"}}
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	return r.list(ctx)
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	return r.get(ctx, id)
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.create(ctx, contact)
}

func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	return r.update(ctx, contact, "platform", "value", "username", "icon")
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
