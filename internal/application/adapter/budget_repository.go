// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// A unique index on user_id guarantees at most one budget per user.
type BudgetRepository interface {
	// FindByUser retrieves the user's budget. Returns
	// domainerror.ErrBudgetNotFound when the user has not set one; absence
	// is an expected state, not a failure.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)

	// Upsert creates the user's budget on first set and replaces the
	// amount on subsequent sets.
	Upsert(ctx context.Context, budget *entity.Budget) error
}
