package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Base carries the UUID primary key and creation time shared by every table.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Article struct {
	Base
	Title            string           `json:"title" gorm:"not null"`
	Slug             string           `json:"slug" gorm:"uniqueIndex;not null"`
	Summary          string           `json:"summary"`
	Content          string           `json:"content" gorm:"type:text"`
	FeaturedImageURL *string          `json:"featured_image_url"`
	CategoryID       *uuid.UUID       `json:"category_id" gorm:"type:uuid;index"`
	Category         *ArticleCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Status           ArticleStatus    `json:"status" gorm:"default:'draft';index"`
	PublishedAt      *time.Time       `json:"published_at" gorm:"index"`
	UpdatedAt        time.Time        `json:"updated_at"`
	ViewCount        int64            `json:"view_count" gorm:"default:0;not null"`
	AuthorID         uuid.UUID        `json:"author_id" gorm:"type:uuid"`
	Tags             []ArticleTag     `json:"tags,omitempty" gorm:"-"`
}

func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// LastModified is the timestamp a sitemap reports for the article, nil when
// neither updated_at nor published_at is known.
func (a *Article) LastModified() *time.Time {
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		return &t
	}
	return a.PublishedAt
}

type ArticleCategory struct {
	Base
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string `json:"description"`
}

func (ArticleCategory) TableName() string { return "article_categories" }

// ArticleTagRelation is the many-to-many join between articles and tags.
type ArticleTagRelation struct {
	ArticleID uuid.UUID `json:"article_id" gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
}

func (ArticleTagRelation) TableName() string { return "article_tag_relations" }
