// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SuggestedCategories is the fixed set of categories offered by the UI.
// It is a convenience list, not a validation boundary: free-text categories
// are accepted and aggregated like any other.
var SuggestedCategories = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Bills & Utilities",
	"Health & Fitness",
	"Other",
}

// Expense represents a single recorded transaction. Expenses are immutable
// once created and are always scoped to the period that was active when
// they were recorded.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PeriodID  uuid.UUID
	Category  string
	Amount    decimal.Decimal // Non-negative, single implicit currency
	Date      time.Time       // Calendar date, no time component
	CreatedAt time.Time
}

// NewExpense creates a new Expense entity bound to the given period.
func NewExpense(userID, periodID uuid.UUID, category string, amount decimal.Decimal, date time.Time) *Expense {
	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		PeriodID:  periodID,
		Category:  category,
		Amount:    amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
