// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting the monthly budget.
type SetBudgetInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SetBudgetOutput represents the output of setting the budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase creates the user's single budget on first set and
// replaces its amount thereafter.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute sets the user's monthly budget.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be non-negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	existing, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetSaveFailed,
			"failed to look up budget",
			err,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Amount)
	if existing != nil {
		budget = existing
		budget.Amount = input.Amount
	}

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetSaveFailed,
			"failed to save budget",
			err,
		)
	}

	return &SetBudgetOutput{Budget: budget}, nil
}
