package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/adapter"
)

// GetSpendingHistoryInput represents the input for the spending history view.
type GetSpendingHistoryInput struct {
	UserID uuid.UUID
}

// GetSpendingHistoryOutput represents the all-time spending history.
type GetSpendingHistoryOutput struct {
	MonthlySpending   []MonthlySpending
	CategoryTotals    []CategoryTotal
	TotalSpent        decimal.Decimal
	AvgMonthlySpend   decimal.Decimal
	MostSpentCategory string
}

// GetSpendingHistoryUseCase builds the profile screen's all-time view: the
// per-period monthly series, all-time and average totals, and the category
// breakdown across every expense the user ever recorded.
type GetSpendingHistoryUseCase struct {
	periodRepo  adapter.PeriodRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetSpendingHistoryUseCase creates a new GetSpendingHistoryUseCase instance.
func NewGetSpendingHistoryUseCase(
	periodRepo adapter.PeriodRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetSpendingHistoryUseCase {
	return &GetSpendingHistoryUseCase{
		periodRepo:  periodRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute assembles the spending history for the user.
func (uc *GetSpendingHistoryUseCase) Execute(ctx context.Context, input GetSpendingHistoryInput) (*GetSpendingHistoryOutput, error) {
	periods, err := uc.periodRepo.FindAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch periods: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	totalSpent := decimal.Zero
	for _, p := range periods {
		totalSpent = totalSpent.Add(p.TotalSpent)
	}

	categoryTotals := AggregateByCategory(expenses)
	mostSpent, _, _ := MostSpentCategory(categoryTotals)

	return &GetSpendingHistoryOutput{
		MonthlySpending:   AggregateByMonth(periods),
		CategoryTotals:    SortedCategoryTotals(categoryTotals),
		TotalSpent:        totalSpent,
		AvgMonthlySpend:   AverageMonthlySpend(periods),
		MostSpentCategory: mostSpent,
	}, nil
}
