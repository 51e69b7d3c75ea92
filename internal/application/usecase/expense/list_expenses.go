// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/application/usecase/period"
	"github.com/budget-questor/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing the active period's expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
	Today  time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Period   *entity.Period
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists the expenses of the user's active period,
// newest date first.
type ListExpensesUseCase struct {
	resolvePeriod *period.ResolveActivePeriodUseCase
	expenseRepo   adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	resolvePeriod *period.ResolveActivePeriodUseCase,
	expenseRepo adapter.ExpenseRepository,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		resolvePeriod: resolvePeriod,
		expenseRepo:   expenseRepo,
	}
}

// Execute lists the active period's expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	resolved, err := uc.resolvePeriod.Execute(ctx, period.ResolveActivePeriodInput{
		UserID: input.UserID,
		Today:  input.Today,
	})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByPeriod(ctx, resolved.Period.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	return &ListExpensesOutput{
		Period:   resolved.Period,
		Expenses: expenses,
	}, nil
}
