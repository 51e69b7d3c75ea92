// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// PeriodRepository defines the interface for accounting period persistence.
type PeriodRepository interface {
	// Create persists a new period.
	Create(ctx context.Context, period *entity.Period) error

	// FindActiveByUser retrieves the period whose [start_date, end_date]
	// window contains the given date for the user. Returns
	// domainerror.ErrPeriodNotFound when no period matches.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Period, error)

	// FindAllByUser retrieves all periods for a user ordered by start date
	// ascending.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Period, error)

	// FindLatestByUser retrieves the most recently created period for a
	// user. Returns domainerror.ErrPeriodNotFound when the user has none.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Period, error)

	// IncrementTotalSpent adds delta to the period's denormalized running
	// total as a single server-side update expression. The increment is
	// atomic at the store; callers never read-modify-write the counter.
	IncrementTotalSpent(ctx context.Context, periodID uuid.UUID, delta decimal.Decimal) error
}
