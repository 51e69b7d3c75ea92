// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodLengthDays is the fixed length of an accounting period.
const PeriodLengthDays = 30

// Period is a 30-day accounting window that scopes expense totals for a
// user. At most one period per user may contain today's date. TotalSpent is
// a denormalized running sum maintained by atomic server-side increments;
// readers that need exact figures recompute from the raw expenses instead.
type Period struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalSpent decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPeriod creates a new Period starting on the given day.
func NewPeriod(userID uuid.UUID, start time.Time) *Period {
	now := time.Now().UTC()
	start = start.Truncate(24 * time.Hour)
	return &Period{
		ID:         uuid.New(),
		UserID:     userID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, PeriodLengthDays),
		TotalSpent: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Contains reports whether the given date falls within [StartDate, EndDate].
func (p *Period) Contains(date time.Time) bool {
	date = date.Truncate(24 * time.Hour)
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}
