package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/models"
)

// MessageRepository stores contact-form submissions. Messages are written
// once and never edited.
type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	crud[models.Message]
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{crud[models.Message]{db: db, entity: "message", order: "created_at desc"}}
}

func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	return r.list(ctx)
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.create(ctx, message)
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}
