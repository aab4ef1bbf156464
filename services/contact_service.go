package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Create(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, req models.ContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) Create(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{}
	if err := applyContact(contact, req); err != nil {
		return nil, err
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, req models.ContactRequest) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyContact(contact, req); err != nil {
		return nil, err
	}
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.Delete(ctx, id)
}

func applyContact(contact *models.Contact, req models.ContactRequest) error {
	icon, err := checkIcon(req.Icon, models.ContactIcons)
	if err != nil {
		return err
	}
	contact.Platform = trimSpace(req.Platform)
	contact.Value = trimSpace(req.Value)
	contact.Username = nil
	if req.Username != nil && trimSpace(*req.Username) != "" {
		username := trimSpace(*req.Username)
		contact.Username = &username
	}
	contact.Icon = icon
	return nil
}

// ContactLink renders a contact for the public page. The display text is the
// username when set, else the raw value; e-mail values link via mailto.
func ContactLink(contact models.Contact) models.ContactLink {
	display := contact.Value
	if contact.Username != nil && *contact.Username != "" {
		display = *contact.Username
	}

	href := contact.Value
	if strings.EqualFold(contact.Platform, "email") && !strings.HasPrefix(href, "mailto:") {
		href = "mailto:" + href
	}

	return models.ContactLink{
		Platform:    contact.Platform,
		DisplayText: display,
		Href:        href,
		Icon:        contact.Icon,
	}
}
