package models

type ArticleTag struct {
	Base
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string `json:"description"`
}

func (ArticleTag) TableName() string { return "article_tags" }
