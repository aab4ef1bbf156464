package repositories

import (
	"context"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"portfolio-cms/models"
)

// ObjectStore keeps small binary objects (profile pictures) in named buckets
// and serves them under a public URL prefix.
type ObjectStore interface {
	List(ctx context.Context, bucket string) ([]models.StorageObject, error)
	Get(ctx context.Context, bucket, name string) (*models.StorageObject, error)
	Upload(ctx context.Context, object *models.StorageObject) error
	Remove(ctx context.Context, bucket string, names ...string) error
	// Replace empties the bucket and stores object in its place, atomically.
	Replace(ctx context.Context, object *models.StorageObject) error
	PublicURL(bucket, name string) string
}

type objectStore struct {
	db      *gorm.DB
	baseURL string
}

func NewObjectStore(db *gorm.DB, publicBaseURL string) ObjectStore {
	return &objectStore{db: db, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// List returns the bucket's objects without their payloads, newest first.
func (s *objectStore) List(ctx context.Context, bucket string) ([]models.StorageObject, error) {
	objects := []models.StorageObject{}
	err := s.db.WithContext(ctx).
		Omit("data").
		Where("bucket = ?", bucket).
		Order("created_at desc").
		Find(&objects).Error
	return objects, translate(err, "object")
}

func (s *objectStore) Get(ctx context.Context, bucket, name string) (*models.StorageObject, error) {
	var object models.StorageObject
	err := s.db.WithContext(ctx).
		Where("bucket = ? AND name = ?", bucket, name).
		First(&object).Error
	if err != nil {
		return nil, translate(err, "object")
	}
	return &object, nil
}

func (s *objectStore) Upload(ctx context.Context, object *models.StorageObject) error {
	return translate(s.db.WithContext(ctx).Create(object).Error, "object")
}

func (s *objectStore) Remove(ctx context.Context, bucket string, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("bucket = ? AND name IN ?", bucket, names).
		Delete(&models.StorageObject{}).Error
	return translate(err, "object")
}

func (s *objectStore) Replace(ctx context.Context, object *models.StorageObject) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bucket = ?", object.Bucket).Delete(&models.StorageObject{}).Error; err != nil {
			return translate(err, "object")
		}
		return translate(tx.Create(object).Error, "object")
	})
}

func (s *objectStore) PublicURL(bucket, name string) string {
	return s.baseURL + "/storage/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)
}
