// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a user's single monthly ceiling. Exactly one budget may exist per
// user; setting it again replaces the amount.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal // Non-negative
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
