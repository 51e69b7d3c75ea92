// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/application/usecase/period"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// MaxCategoryLength is the maximum allowed length for an expense category.
const MaxCategoryLength = 100

// AddExpenseInput represents the input for recording an expense.
type AddExpenseInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	Today    time.Time
}

// AddExpenseOutput represents the output of recording an expense.
type AddExpenseOutput struct {
	Expense *entity.Expense
	Period  *entity.Period
}

// AddExpenseUseCase records an expense against the user's active period and
// bumps the period's denormalized running total with a single atomic
// server-side increment.
type AddExpenseUseCase struct {
	resolvePeriod *period.ResolveActivePeriodUseCase
	expenseRepo   adapter.ExpenseRepository
	periodRepo    adapter.PeriodRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(
	resolvePeriod *period.ResolveActivePeriodUseCase,
	expenseRepo adapter.ExpenseRepository,
	periodRepo adapter.PeriodRepository,
) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		resolvePeriod: resolvePeriod,
		expenseRepo:   expenseRepo,
		periodRepo:    periodRepo,
	}
}

// Execute validates and records the expense. Validation failures are
// rejected before any store call is attempted.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" || len(category) > MaxCategoryLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	// The period is resolved from the clock, never from the expense date.
	// A backdated expense still lands in the current period; resolving from
	// its date could mint a second period overlapping the active one.
	resolved, err := uc.resolvePeriod.Execute(ctx, period.ResolveActivePeriodInput{
		UserID: input.UserID,
		Today:  input.Today,
	})
	if err != nil {
		return nil, err
	}

	exp := entity.NewExpense(input.UserID, resolved.Period.ID, category, input.Amount, input.Date)
	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInsertFailed,
			"failed to record expense",
			err,
		)
	}

	// The expense is committed at this point. A failed total update leaves
	// the denormalized counter stale until the next period rollover; it is
	// reported as its own error rather than rolling back the insert.
	if err := uc.periodRepo.IncrementTotalSpent(ctx, resolved.Period.ID, input.Amount); err != nil {
		slog.Error("Failed to update period total after expense insert",
			"periodID", resolved.Period.ID,
			"expenseID", exp.ID,
			"error", err,
		)
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodePeriodTotalUpdateFailed,
			fmt.Sprintf("expense %s recorded but period total update failed", exp.ID),
			domainerror.ErrPeriodTotalUpdateFailed,
		)
	}

	resolved.Period.TotalSpent = resolved.Period.TotalSpent.Add(input.Amount)

	return &AddExpenseOutput{
		Expense: exp,
		Period:  resolved.Period,
	}, nil
}
