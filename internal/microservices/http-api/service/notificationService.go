package service

import (
	"context"
	"errors"
	"fmt"

	"profilehub/internal/microservices/http-api/dto"
	"profilehub/internal/microservices/http-api/repository"
	"profilehub/internal/observability/metrics"
)

var ErrUserNotFound = errors.New("user not found")

type NotificationService interface {
	// CurrentLanguage checks that the claimed identity names an existing user
	// and returns that user's language.
	CurrentLanguage(ctx context.Context, claims *Claims) (int, error)
	// FetchActive returns the caller's unvisited notifications, newest first,
	// and marks exactly those visited.
	FetchActive(ctx context.Context, recordID int64) ([]dto.NotificationResponse, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) CurrentLanguage(ctx context.Context, claims *Claims) (int, error) {
	const op = "count user"

	count, languageID, err := s.repo.CountAndLanguage(ctx, claims.RecordID, claims.UserID)
	if err != nil {
		return 0, classify(op, err, KindInternal)
	}
	if count == 0 {
		return 0, Fail(KindUserNotFound, op,
			fmt.Errorf("%w: id=%d user_id=%q", ErrUserNotFound, claims.RecordID, claims.UserID))
	}
	return languageID, nil
}

func (s *notificationService) FetchActive(ctx context.Context, recordID int64) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.FetchAndMarkVisited(ctx, recordID)
	if err != nil {
		return nil, classify("fetch notifications", err, KindInternal)
	}

	metrics.NotificationsDeliveredTotal.Add(float64(len(notifications)))
	return dto.FromModelToNotificationResponses(notifications), nil
}

// classify maps repository errors onto kinds: connection failures keep their
// own kind, everything else becomes fallback.
func classify(op string, err error, fallback Kind) error {
	if errors.Is(err, repository.ErrConnection) {
		return Fail(KindConnection, op, err)
	}
	return Fail(fallback, op, err)
}
