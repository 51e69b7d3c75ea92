// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching the budget.
type GetBudgetInput struct {
	UserID uuid.UUID
}

// GetBudgetOutput represents the output of fetching the budget. Budget is
// nil when the user has not set one; that is an expected state, not an error.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase fetches the user's budget with maybe-single semantics.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute fetches the user's budget.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return &GetBudgetOutput{}, nil
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	return &GetBudgetOutput{Budget: budget}, nil
}
