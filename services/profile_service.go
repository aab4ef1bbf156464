package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"portfolio-cms/models"
	"portfolio-cms/repositories"
)

// ProfileService manages the single current profile picture.
type ProfileService interface {
	// Current returns the picture on display, or nil when there is none.
	Current(ctx context.Context) (*models.ProfilePicture, error)
	// Upload replaces any existing picture with data. The content must sniff
	// as an image and fit within the configured size limit.
	Upload(ctx context.Context, data []byte) (*models.ProfilePicture, error)
	Delete(ctx context.Context) error
	// Object serves a stored object from a public bucket.
	Object(ctx context.Context, bucket, name string) (*models.StorageObject, error)
}

type profileService struct {
	objects repositories.ObjectStore
	maxSize int64
	now     func() time.Time
	log     zerolog.Logger
}

func NewProfileService(objects repositories.ObjectStore, maxSize int64, log zerolog.Logger) ProfileService {
	return &profileService{
		objects: objects,
		maxSize: maxSize,
		now:     time.Now,
		log:     log.With().Str("component", "profile").Logger(),
	}
}

func (s *profileService) Current(ctx context.Context) (*models.ProfilePicture, error) {
	objects, err := s.objects.List(ctx, models.ProfilePictureBucket)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, nil
	}
	name := objects[0].Name
	return &models.ProfilePicture{
		Name:      name,
		PublicURL: s.objects.PublicURL(models.ProfilePictureBucket, name),
	}, nil
}

func (s *profileService) Upload(ctx context.Context, data []byte) (*models.ProfilePicture, error) {
	if len(data) == 0 {
		return nil, models.ErrorValidation{Field: "file", Message: "file is empty"}
	}
	if int64(len(data)) > s.maxSize {
		return nil, models.ErrorValidation{
			Field:   "file",
			Message: fmt.Sprintf("file exceeds the %d byte limit", s.maxSize),
		}
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, models.ErrorValidation{Field: "file", Message: "file must be an image, got " + mtype.String()}
	}

	object := &models.StorageObject{
		Bucket:      models.ProfilePictureBucket,
		Name:        fmt.Sprintf("profile-%d%s", s.now().UnixMilli(), mtype.Extension()),
		ContentType: mtype.String(),
		Size:        int64(len(data)),
		Data:        data,
	}
	if err := s.objects.Replace(ctx, object); err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	s.log.Info().Str("name", object.Name).Int64("size", object.Size).Msg("Profile picture replaced")
	return &models.ProfilePicture{
		Name:      object.Name,
		PublicURL: s.objects.PublicURL(object.Bucket, object.Name),
	}, nil
}

func (s *profileService) Delete(ctx context.Context) error {
	objects, err := s.objects.List(ctx, models.ProfilePictureBucket)
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		return models.ErrorNotFound{Message: "no profile picture"}
	}
	names := make([]string, 0, len(objects))
	for _, object := range objects {
		names = append(names, object.Name)
	}
	if err := s.objects.Remove(ctx, models.ProfilePictureBucket, names...); err != nil {
		return fmt.Errorf("failed to remove profile picture: %w", err)
	}
	s.log.Info().Int("removed", len(names)).Msg("Profile picture removed")
	return nil
}

func (s *profileService) Object(ctx context.Context, bucket, name string) (*models.StorageObject, error) {
	if bucket != models.ProfilePictureBucket {
		return nil, models.ErrorNotFound{Message: "object not found"}
	}
	return s.objects.Get(ctx, bucket, name)
}
