// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
// Expenses are insert-only: there is no update or delete.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByPeriod retrieves all expenses belonging to a period, newest
	// date first.
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Expense, error)

	// FindByUser retrieves all expenses ever recorded by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
}
