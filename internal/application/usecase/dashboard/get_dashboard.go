package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/application/usecase/period"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// GetDashboardInput represents the input for loading the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
	Today  time.Time
}

// GetDashboardOutput represents the aggregated dashboard view for the
// active period.
type GetDashboardOutput struct {
	Period         *entity.Period
	Expenses       []*entity.Expense
	CategoryTotals []CategoryTotal
	TotalSpent     decimal.Decimal
	BudgetAmount   decimal.Decimal
	BudgetLeft     decimal.Decimal
	HasBudget      bool
}

// GetDashboardUseCase assembles the current-period dashboard: it resolves
// the active window, pulls its expenses, and combines the aggregates with
// the stored budget. Totals are recomputed from the raw expenses rather than
// read from the period's denormalized cache.
type GetDashboardUseCase struct {
	resolvePeriod *period.ResolveActivePeriodUseCase
	expenseRepo   adapter.ExpenseRepository
	budgetRepo    adapter.BudgetRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	resolvePeriod *period.ResolveActivePeriodUseCase,
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		resolvePeriod: resolvePeriod,
		expenseRepo:   expenseRepo,
		budgetRepo:    budgetRepo,
	}
}

// Execute loads the dashboard for the user's active period.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	resolved, err := uc.resolvePeriod.Execute(ctx, period.ResolveActivePeriodInput{
		UserID: input.UserID,
		Today:  input.Today,
	})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByPeriod(ctx, resolved.Period.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period expenses: %w", err)
	}

	var budget *entity.Budget
	b, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	if err == nil {
		budget = b
	}

	totals := AggregateByCategory(expenses)
	totalSpent := TotalSpent(expenses)

	output := &GetDashboardOutput{
		Period:         resolved.Period,
		Expenses:       expenses,
		CategoryTotals: SortedCategoryTotals(totals),
		TotalSpent:     totalSpent,
		BudgetLeft:     BudgetLeft(budget, totalSpent),
	}
	if budget != nil {
		output.BudgetAmount = budget.Amount
		output.HasBudget = true
	}
	return output, nil
}
