package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/usecase/period"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

type fakePeriodRepo struct {
	active  *entity.Period
	periods []*entity.Period
	latest  *entity.Period
}

func (f *fakePeriodRepo) Create(ctx context.Context, p *entity.Period) error {
	f.active = p
	f.periods = append(f.periods, p)
	return nil
}

func (f *fakePeriodRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Period, error) {
	if f.active == nil {
		return nil, domainerror.ErrPeriodNotFound
	}
	return f.active, nil
}

func (f *fakePeriodRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Period, error) {
	return f.periods, nil
}

func (f *fakePeriodRepo) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Period, error) {
	if f.latest == nil {
		return nil, domainerror.ErrPeriodNotFound
	}
	return f.latest, nil
}

func (f *fakePeriodRepo) IncrementTotalSpent(ctx context.Context, periodID uuid.UUID, delta decimal.Decimal) error {
	return nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return f.expenses, nil
}

type fakeBudgetRepo struct {
	budget *entity.Budget
}

func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error) {
	if f.budget == nil {
		return nil, domainerror.ErrBudgetNotFound
	}
	return f.budget, nil
}

func (f *fakeBudgetRepo) Upsert(ctx context.Context, budget *entity.Budget) error {
	f.budget = budget
	return nil
}

func TestGetDashboard(t *testing.T) {
	userID := uuid.New()
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("recomputes totals from raw expenses", func(t *testing.T) {
		active := entity.NewPeriod(userID, today.AddDate(0, 0, -5))
		// Denormalized total deliberately out of sync with the raw rows.
		active.TotalSpent = decimal.RequireFromString("999")

		periodRepo := &fakePeriodRepo{active: active}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			makeExpense("Food & Dining", "30.00"),
			makeExpense("Shopping", "20.00"),
		}}
		budgetRepo := &fakeBudgetRepo{budget: entity.NewBudget(userID, decimal.RequireFromString("200"))}

		uc := NewGetDashboardUseCase(period.NewResolveActivePeriodUseCase(periodRepo), expenseRepo, budgetRepo)
		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Today: today})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalSpent.Equal(decimal.RequireFromString("50.00")) {
			t.Errorf("expected total recomputed from expenses, got %s", output.TotalSpent)
		}
		if !output.BudgetLeft.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected budget left 150.00, got %s", output.BudgetLeft)
		}
		if !output.HasBudget {
			t.Error("expected HasBudget=true")
		}
		if len(output.CategoryTotals) != 2 {
			t.Fatalf("expected 2 category totals, got %d", len(output.CategoryTotals))
		}
		if output.CategoryTotals[0].Category != "Food & Dining" {
			t.Errorf("expected largest category first, got %q", output.CategoryTotals[0].Category)
		}
	})

	t.Run("works without a budget", func(t *testing.T) {
		periodRepo := &fakePeriodRepo{active: entity.NewPeriod(userID, today)}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{makeExpense("Other", "25.00")}}
		budgetRepo := &fakeBudgetRepo{}

		uc := NewGetDashboardUseCase(period.NewResolveActivePeriodUseCase(periodRepo), expenseRepo, budgetRepo)
		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Today: today})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.HasBudget {
			t.Error("expected HasBudget=false")
		}
		if !output.BudgetAmount.IsZero() {
			t.Errorf("expected zero budget amount, got %s", output.BudgetAmount)
		}
		if !output.BudgetLeft.Equal(decimal.RequireFromString("-25.00")) {
			t.Errorf("expected budget left -25.00, got %s", output.BudgetLeft)
		}
	})

	t.Run("creates the period lazily for a new visitor", func(t *testing.T) {
		periodRepo := &fakePeriodRepo{}
		uc := NewGetDashboardUseCase(period.NewResolveActivePeriodUseCase(periodRepo), &fakeExpenseRepo{}, &fakeBudgetRepo{})

		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Today: today})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Period == nil {
			t.Fatal("expected a period")
		}
		if !output.Period.StartDate.Equal(today) {
			t.Errorf("expected fresh period starting today, got %s", output.Period.StartDate)
		}
		if !output.TotalSpent.IsZero() {
			t.Errorf("expected zero total for a fresh period, got %s", output.TotalSpent)
		}
	})
}

func TestGetSpendingHistory(t *testing.T) {
	userID := uuid.New()

	t.Run("assembles the all-time view", func(t *testing.T) {
		periodRepo := &fakePeriodRepo{periods: []*entity.Period{
			{StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), TotalSpent: decimal.RequireFromString("100")},
			{StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), TotalSpent: decimal.RequireFromString("300")},
		}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			makeExpense("Food & Dining", "250.00"),
			makeExpense("Transportation", "150.00"),
		}}

		uc := NewGetSpendingHistoryUseCase(periodRepo, expenseRepo)
		output, err := uc.Execute(context.Background(), GetSpendingHistoryInput{UserID: userID})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.MonthlySpending) != 2 {
			t.Fatalf("expected 2 monthly points, got %d", len(output.MonthlySpending))
		}
		if output.MonthlySpending[0].Month != "Apr 2025" {
			t.Errorf("expected first point 'Apr 2025', got %q", output.MonthlySpending[0].Month)
		}
		if !output.TotalSpent.Equal(decimal.RequireFromString("400")) {
			t.Errorf("expected all-time total 400, got %s", output.TotalSpent)
		}
		if !output.AvgMonthlySpend.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected average 200, got %s", output.AvgMonthlySpend)
		}
		if output.MostSpentCategory != "Food & Dining" {
			t.Errorf("expected most spent category Food & Dining, got %q", output.MostSpentCategory)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		uc := NewGetSpendingHistoryUseCase(&fakePeriodRepo{}, &fakeExpenseRepo{})

		output, err := uc.Execute(context.Background(), GetSpendingHistoryInput{UserID: userID})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.MonthlySpending) != 0 {
			t.Errorf("expected empty series, got %v", output.MonthlySpending)
		}
		if !output.TotalSpent.IsZero() || !output.AvgMonthlySpend.IsZero() {
			t.Error("expected zero totals")
		}
		if output.MostSpentCategory != "" {
			t.Errorf("expected no most spent category, got %q", output.MostSpentCategory)
		}
	})
}

func TestGetInvestmentOverview(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		budget       string
		latestSpent  string
		expectedRate string
		expectedTier InvestmentTier
	}{
		{name: "advanced band", budget: "2000", latestSpent: "1000", expectedRate: "50", expectedTier: TierAdvanced},
		{name: "diversify band", budget: "1000", latestSpent: "750", expectedRate: "25", expectedTier: TierDiversify},
		{name: "foundation band", budget: "1000", latestSpent: "950", expectedRate: "5", expectedTier: TierBuildFoundation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgetRepo := &fakeBudgetRepo{budget: entity.NewBudget(userID, decimal.RequireFromString(tt.budget))}
			periodRepo := &fakePeriodRepo{latest: &entity.Period{TotalSpent: decimal.RequireFromString(tt.latestSpent)}}

			uc := NewGetInvestmentOverviewUseCase(budgetRepo, periodRepo)
			output, err := uc.Execute(context.Background(), GetInvestmentOverviewInput{UserID: userID})

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.SavingsRate.Equal(decimal.RequireFromString(tt.expectedRate)) {
				t.Errorf("expected savings rate %s, got %s", tt.expectedRate, output.SavingsRate)
			}
			if output.Tier != tt.expectedTier {
				t.Errorf("expected tier %s, got %s", tt.expectedTier, output.Tier)
			}
			if output.Recommendation == "" {
				t.Error("expected a recommendation")
			}
		})
	}

	t.Run("no budget and no periods", func(t *testing.T) {
		uc := NewGetInvestmentOverviewUseCase(&fakeBudgetRepo{}, &fakePeriodRepo{})

		output, err := uc.Execute(context.Background(), GetInvestmentOverviewInput{UserID: userID})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.SavingsRate.IsZero() {
			t.Errorf("expected zero savings rate, got %s", output.SavingsRate)
		}
		if output.Tier != TierBuildFoundation {
			t.Errorf("expected foundation tier, got %s", output.Tier)
		}
	})
}
