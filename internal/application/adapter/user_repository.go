// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// UserRepository stores user accounts.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID looks a user up by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail looks a user up by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update saves changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
