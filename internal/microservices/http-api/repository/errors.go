package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrConnection marks failures to obtain a database connection, as opposed
	// to failures of a statement on an established one.
	ErrConnection = errors.New("database connection unavailable")
	ErrNotFound   = errors.New("record not found")
)

// withConn runs fn on a single pooled connection that is released on every
// return path. Errors raised before fn runs are connection failures.
func withConn(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	acquired := false
	err := db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		acquired = true
		return fn(tx)
	})
	if err != nil && !acquired {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return err
}
