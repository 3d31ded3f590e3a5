package store

import (
	"context"
	"errors"
	"fmt"

	"canvas-app/internal/domain/canvases"
	"canvas-app/internal/domain/users"

	"gorm.io/gorm"
)

// ErrProfileNotFound is returned when a profile name lookup misses.
var ErrProfileNotFound = errors.New("profile not found")

// UserStore covers the profile lookups the canvas UI needs.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ProfileName returns the display name for userID.
func (s *UserStore) ProfileName(ctx context.Context, userID string) (string, error) {
	var u users.User
	err := s.db.WithContext(ctx).Select("name", "lastname").First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrProfileNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select profile name: %w: %v", canvases.ErrStoreRead, err)
	}
	return u.DisplayName(), nil
}
