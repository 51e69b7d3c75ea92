package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/adapter"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// GetInvestmentOverviewInput represents the input for the investment view.
type GetInvestmentOverviewInput struct {
	UserID uuid.UUID
}

// GetInvestmentOverviewOutput represents the savings-rate derived advice band.
type GetInvestmentOverviewOutput struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	SavingsRate     decimal.Decimal
	Tier            InvestmentTier
	Recommendation  string
}

// GetInvestmentOverviewUseCase derives the savings rate and its advice tier.
// Income is the budget ceiling (zero when unset) and expenses are the latest
// period's denormalized total (zero when no periods exist).
type GetInvestmentOverviewUseCase struct {
	budgetRepo adapter.BudgetRepository
	periodRepo adapter.PeriodRepository
}

// NewGetInvestmentOverviewUseCase creates a new GetInvestmentOverviewUseCase instance.
func NewGetInvestmentOverviewUseCase(
	budgetRepo adapter.BudgetRepository,
	periodRepo adapter.PeriodRepository,
) *GetInvestmentOverviewUseCase {
	return &GetInvestmentOverviewUseCase{
		budgetRepo: budgetRepo,
		periodRepo: periodRepo,
	}
}

// Execute computes the investment overview for the user.
func (uc *GetInvestmentOverviewUseCase) Execute(ctx context.Context, input GetInvestmentOverviewInput) (*GetInvestmentOverviewOutput, error) {
	income := decimal.Zero
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	if err == nil {
		income = budget.Amount
	}

	expenses := decimal.Zero
	latest, err := uc.periodRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrPeriodNotFound) {
		return nil, fmt.Errorf("failed to fetch latest period: %w", err)
	}
	if err == nil {
		expenses = latest.TotalSpent
	}

	rate := SavingsRate(income, expenses)
	tier := AdviceTier(rate)

	return &GetInvestmentOverviewOutput{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		SavingsRate:     rate,
		Tier:            tier,
		Recommendation:  tier.Recommendation(),
	}, nil
}
