package models

import (
	"github.com/lib/pq"
)

type Project struct {
	Base
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Technologies pq.StringArray `json:"technologies" gorm:"type:text[]"`
	Link         *string        `json:"link"`
	ImageURL     *string        `json:"image_url"`
}

// Skill stores its category by name rather than by id.
type Skill struct {
	Base
	Category string `json:"category" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
	Icon     string `json:"icon"`
}

type SkillCategory struct {
	Base
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order" gorm:"default:0;not null"`
}

type EducationStatus string

const (
	EducationCompleted  EducationStatus = "Completed"
	EducationInProgress EducationStatus = "In Progress"
	EducationPlanned    EducationStatus = "Planned"
	EducationCertified  EducationStatus = "Certified"
)

func (s EducationStatus) Valid() bool {
	switch s {
	case EducationCompleted, EducationInProgress, EducationPlanned, EducationCertified:
		return true
	}
	return false
}

type Education struct {
	Base
	Course      string          `json:"course" gorm:"not null"`
	Institution string          `json:"institution" gorm:"not null"`
	Status      EducationStatus `json:"status" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
}

func (Education) TableName() string { return "education" }

type Contact struct {
	Base
	Platform string  `json:"platform" gorm:"not null"`
	Value    string  `json:"value" gorm:"not null"`
	Username *string `json:"username"`
	Icon     string  `json:"icon"`
}

// Message is an inbound contact-form submission. Rows are never updated.
type Message struct {
	Base
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}
