package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"profilehub/internal/microservices/http-api/models"
)

type NotificationRepository interface {
	// CountAndLanguage counts users matching both ids and returns the
	// language of the match (0 when there is none).
	CountAndLanguage(ctx context.Context, recordID int64, userID string) (int64, int, error)
	// FetchAndMarkVisited returns the owner's unvisited notifications, newest
	// first, and marks exactly that set visited.
	FetchAndMarkVisited(ctx context.Context, recordID int64) ([]models.Notification, error)
}

// TxPool is the part of *pgxpool.Pool the repository needs. Begin acquires a
// pooled connection that is released when the transaction ends.
type TxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type notificationRepository struct {
	pool TxPool
}

func NewNotificationRepository(pool TxPool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

const countAndLanguageQuery = `
	SELECT COUNT(*), COALESCE(MAX(language_id), 0)
	FROM users
	WHERE id = $1 AND user_id = $2`

// The update and the read are one statement: rows locked by a concurrent call
// are re-checked against visited = FALSE after that call commits, so each
// notification is returned by exactly one caller, and rows inserted after the
// statement's snapshot are left for the next call. It runs in a transaction
// so a payload that fails to decode leaves every row unvisited.
const fetchAndMarkVisitedQuery = `
	WITH marked AS (
		UPDATE notifications
		SET visited = TRUE
		WHERE rid = $1 AND visited = FALSE
		RETURNING id, rid, notification_type, COALESCE("json"::text, 'null') AS payload, "timestamp"
	)
	SELECT id, rid, notification_type, payload, "timestamp"
	FROM marked
	ORDER BY "timestamp" DESC, id DESC`

func (r *notificationRepository) CountAndLanguage(ctx context.Context, recordID int64, userID string) (count int64, languageID int, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer rollbackOnError(ctx, tx, &err)

	if err := tx.QueryRow(ctx, countAndLanguageQuery, recordID, userID).Scan(&count, &languageID); err != nil {
		return 0, 0, fmt.Errorf("failed to count user %d: %w", recordID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return count, languageID, nil
}

func (r *notificationRepository) FetchAndMarkVisited(ctx context.Context, recordID int64) (notifications []models.Notification, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollbackOnError(ctx, tx, &err)

	rows, err := tx.Query(ctx, fetchAndMarkVisitedQuery, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications visited: %w", err)
	}

	notifications, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var n models.Notification
		var payload string
		if err := row.Scan(&n.ID, &n.RecordID, &n.Type, &payload, &n.Timestamp); err != nil {
			return n, err
		}
		if !json.Valid([]byte(payload)) {
			return n, fmt.Errorf("notification %d: payload is not valid JSON", n.ID)
		}
		n.Payload = json.RawMessage(payload)
		n.Visited = true
		return n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications for %d: %w", recordID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return notifications, nil
}

// begin opens a transaction; failing here means no connection could be used.
func (r *notificationRepository) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return tx, nil
}

// rollbackOnError ends tx when the caller is returning an error, which
// releases its connection and leaves every row as it was.
func rollbackOnError(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		_ = tx.Rollback(ctx)
	}
}
