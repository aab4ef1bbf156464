package models

const ProfilePictureBucket = "profile-pictures"

// StorageObject is a blob held in a named bucket.
type StorageObject struct {
	Base
	Bucket      string `json:"bucket" gorm:"not null;uniqueIndex:idx_storage_objects_bucket_name"`
	Name        string `json:"name" gorm:"not null;uniqueIndex:idx_storage_objects_bucket_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

type ProfilePicture struct {
	Name      string `json:"name"`
	PublicURL string `json:"public_url"`
}

// All lists every persisted model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserRole{},
		&Session{},
		&ArticleCategory{},
		&ArticleTag{},
		&Article{},
		&ArticleTagRelation{},
		&Project{},
		&SkillCategory{},
		&Skill{},
		&Education{},
		&Contact{},
		&Message{},
		&StorageObject{},
	}
}
