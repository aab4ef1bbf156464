package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type MessageService interface {
	Submit(ctx context.Context, req models.MessageRequest) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	messageRepo repositories.MessageRepository
	log         zerolog.Logger
}

func NewMessageService(messageRepo repositories.MessageRepository, log zerolog.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		log:         log.With().Str("component", "messages").Logger(),
	}
}

func (s *messageService) Submit(ctx context.Context, req models.MessageRequest) (*models.Message, error) {
	message := &models.Message{
		Name:    trimSpace(req.Name),
		Email:   trimSpace(req.Email),
		Message: req.Message,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", message.ID.String()).Msg("Contact message received")
	return message, nil
}

func (s *messageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.List(ctx)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.messageRepo.Delete(ctx, id)
}
