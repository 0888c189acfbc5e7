// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/google/uuid"

	"wsd/internal/models"
)

// UserRepository provides read access to stored credential records.
type UserRepository interface {
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByUsername loads a user by exact username match.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Create inserts a new user.
	Create(ctx context.Context, u *models.User) error
}
