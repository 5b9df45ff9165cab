package service

import (
	"context"
	"errors"

	"profilehub/internal/microservices/http-api/repository"
	"profilehub/internal/observability/metrics"
)

// ObjectStore deletes stored objects by key. Deleting a key that does not
// exist succeeds.
type ObjectStore interface {
	Delete(ctx context.Context, key string) error
}

type PictureService interface {
	// Language returns the stored language of the caller.
	Language(ctx context.Context, recordID int64) (int, error)
	// DeletePicture clears the picture columns, then deletes the stored object.
	// The two steps are not compensated: a failed object delete leaves the row
	// cleared.
	DeletePicture(ctx context.Context, recordID int64, userID string) error
}

type pictureService struct {
	users repository.UserRepository
	store ObjectStore
}

func NewPictureService(users repository.UserRepository, store ObjectStore) PictureService {
	return &pictureService{users: users, store: store}
}

// PictureKey names the stored picture of a user.
func PictureKey(userID string) string {
	return userID + ".png"
}

func (s *pictureService) Language(ctx context.Context, recordID int64) (int, error) {
	languageID, err := s.users.LanguageOf(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, Fail(KindInternal, "lookup language", err)
		}
		return 0, classify("lookup language", err, KindInternal)
	}
	return languageID, nil
}

func (s *pictureService) DeletePicture(ctx context.Context, recordID int64, userID string) error {
	if err := s.users.ClearPicture(ctx, recordID); err != nil {
		metrics.PictureDeletionsTotal.WithLabelValues("db_failed").Inc()
		return classify("clear picture", err, KindImageDeletion)
	}

	if err := s.store.Delete(ctx, PictureKey(userID)); err != nil {
		metrics.PictureDeletionsTotal.WithLabelValues("object_failed").Inc()
		return Fail(KindImageDeletion, "delete picture object", err)
	}

	metrics.PictureDeletionsTotal.WithLabelValues("deleted").Inc()
	return nil
}
