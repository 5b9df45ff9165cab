package repository

import (
	"context"
	"errors"
	"fmt"

	"profilehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the user data operations the profile endpoints need.
type UserRepository interface {
	// LanguageOf returns the stored language of a user; ErrNotFound when the
	// record does not exist.
	LanguageOf(ctx context.Context, recordID int64) (int, error)
	// ClearPicture forgets the stored picture reference of a user.
	ClearPicture(ctx context.Context, recordID int64) error
	// CountActive counts users with is_active set, across all languages.
	CountActive(ctx context.Context) (int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) LanguageOf(ctx context.Context, recordID int64) (int, error) {
	var user models.User
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Select("id", "language_id").First(&user, "id = ?", recordID).Error
	})
	if err != nil {
		// zero value, never a half-filled user
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: user %d", ErrNotFound, recordID)
		}
		return 0, err
	}
	return user.LanguageID, nil
}

func (r *userRepository) ClearPicture(ctx context.Context, recordID int64) error {
	return withConn(ctx, r.db, func(tx *gorm.DB) error {
		// map form so gorm writes the NULL and the false instead of skipping zero values
		return tx.Model(&models.User{}).
			Where("id = ?", recordID).
			Updates(map[string]interface{}{
				"picture_url":         nil,
				"is_picture_uploaded": false,
			}).Error
	})
}

func (r *userRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&models.User{}).Where("is_active = ?", true).Count(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
