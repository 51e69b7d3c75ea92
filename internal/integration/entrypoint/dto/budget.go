// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-questor/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting the budget.
type SetBudgetRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}

// BudgetResponse represents the budget in API responses. Set is false when
// the user has not configured a budget yet.
type BudgetResponse struct {
	ID     string  `json:"id,omitempty"`
	Amount float64 `json:"amount"`
	Set    bool    `json:"set"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
// A nil budget maps to the unset response.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	if b == nil {
		return BudgetResponse{Set: false}
	}
	amount, _ := b.Amount.Float64()
	return BudgetResponse{
		ID:     b.ID.String(),
		Amount: amount,
		Set:    true,
	}
}
