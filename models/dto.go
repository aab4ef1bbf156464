package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type SessionResponse struct {
	Session Session  `json:"session"`
	Roles   []string `json:"roles"`
}

type ArticleRequest struct {
	Title            string        `json:"title" validate:"required,max=255"`
	Slug             string        `json:"slug" validate:"max=255"`
	Summary          string        `json:"summary"`
	Content          string        `json:"content" validate:"required"`
	FeaturedImageURL *string       `json:"featured_image_url" validate:"omitempty,url"`
	CategoryID       *uuid.UUID    `json:"category_id"`
	Status           ArticleStatus `json:"status" validate:"required,oneof=draft published"`
	TagIDs           []uuid.UUID   `json:"tag_ids"`
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"max=100"`
	Description *string `json:"description"`
}

type TagRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"max=100"`
	Description *string `json:"description"`
}

type ProjectRequest struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	Link         *string  `json:"link" validate:"omitempty,url"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,url"`
}

type SkillRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
	Icon     string `json:"icon"`
}

type SkillCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Icon         string `json:"icon"`
	DisplayOrder *int   `json:"display_order" validate:"omitempty,min=0"`
}

type EducationRequest struct {
	Course      string          `json:"course" validate:"required,max=255"`
	Institution string          `json:"institution" validate:"required,max=255"`
	Status      EducationStatus `json:"status" validate:"required"`
	Description string          `json:"description"`
}

type ContactRequest struct {
	Platform string  `json:"platform" validate:"required,max=100"`
	Value    string  `json:"value" validate:"required,max=255"`
	Username *string `json:"username"`
	Icon     string  `json:"icon"`
}

type MessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ArticleListParams struct {
	CategoryID string `form:"category"`
}

// SkillGroup is the public skills view: one entry per category name.
type SkillGroup struct {
	Title  string   `json:"title"`
	Icon   string   `json:"icon"`
	Skills []string `json:"skills"`
}

// ContactLink is the public rendering of a Contact.
type ContactLink struct {
	Platform    string `json:"platform"`
	DisplayText string `json:"display_text"`
	Href        string `json:"href"`
	Icon        string `json:"icon,omitempty"`
}

type EducationEntry struct {
	Education
	Icon string `json:"icon"`
}

// Overview is the home page payload, assembled from several collections.
// Sources that failed to load are named in Failed and left empty.
type Overview struct {
	ProfilePicture *ProfilePicture  `json:"profile_picture"`
	Skills         []SkillGroup     `json:"skills"`
	Projects       []Project        `json:"projects"`
	Education      []EducationEntry `json:"education"`
	Contacts       []ContactLink    `json:"contacts"`
	Failed         []string         `json:"failed"`
}

// ArticleEditorData feeds the admin article editor.
type ArticleEditorData struct {
	Articles   []Article         `json:"articles"`
	Categories []ArticleCategory `json:"categories"`
	Tags       []ArticleTag      `json:"tags"`
	Failed     []string          `json:"failed"`
}

type ArticleDetail struct {
	Article
	TagIDs []uuid.UUID `json:"tag_ids"`
}
