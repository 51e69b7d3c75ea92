package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/domain/entity"
)

func TestBudgetLeft(t *testing.T) {
	t.Run("subtracts spending from the budget", func(t *testing.T) {
		budget := &entity.Budget{Amount: decimal.RequireFromString("500.00")}

		left := BudgetLeft(budget, decimal.RequireFromString("120.50"))

		if !left.Equal(decimal.RequireFromString("379.50")) {
			t.Errorf("expected 379.50, got %s", left)
		}
	})

	t.Run("overspend goes negative", func(t *testing.T) {
		budget := &entity.Budget{Amount: decimal.RequireFromString("100.00")}

		left := BudgetLeft(budget, decimal.RequireFromString("150.00"))

		if !left.Equal(decimal.RequireFromString("-50.00")) {
			t.Errorf("expected -50.00 without clamping, got %s", left)
		}
	})

	t.Run("missing budget counts as zero", func(t *testing.T) {
		left := BudgetLeft(nil, decimal.RequireFromString("30.00"))

		if !left.Equal(decimal.RequireFromString("-30.00")) {
			t.Errorf("expected -30.00, got %s", left)
		}
	})
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		expected string
	}{
		{name: "typical rate", income: "4000", expenses: "3000", expected: "25"},
		{name: "rounds to one decimal place", income: "3000", expenses: "2000", expected: "33.3"},
		{name: "zero income", income: "0", expenses: "500", expected: "0"},
		{name: "negative income", income: "-100", expenses: "500", expected: "0"},
		{name: "spending above income", income: "1000", expenses: "1500", expected: "-50"},
		{name: "no spending", income: "1000", expenses: "0", expected: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := SavingsRate(
				decimal.RequireFromString(tt.income),
				decimal.RequireFromString(tt.expenses),
			)
			if !rate.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, rate)
			}
		})
	}
}

func TestAdviceTier(t *testing.T) {
	tests := []struct {
		name        string
		savingsRate string
		expected    InvestmentTier
	}{
		{name: "negative rate", savingsRate: "-10", expected: TierBuildFoundation},
		{name: "just below diversify", savingsRate: "19.9", expected: TierBuildFoundation},
		{name: "diversify lower bound is inclusive", savingsRate: "20", expected: TierDiversify},
		{name: "just below advanced", savingsRate: "39.9", expected: TierDiversify},
		{name: "advanced lower bound is inclusive", savingsRate: "40", expected: TierAdvanced},
		{name: "high rate", savingsRate: "85", expected: TierAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := AdviceTier(decimal.RequireFromString(tt.savingsRate))
			if tier != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, tier)
			}
		})
	}
}

func TestAdviceTierRecommendation(t *testing.T) {
	for _, tier := range []InvestmentTier{TierBuildFoundation, TierDiversify, TierAdvanced} {
		if tier.Recommendation() == "" {
			t.Errorf("expected a recommendation for tier %s", tier)
		}
	}
}

func TestAverageMonthlySpend(t *testing.T) {
	t.Run("mean of period totals", func(t *testing.T) {
		periods := []*entity.Period{
			{TotalSpent: decimal.RequireFromString("300")},
			{TotalSpent: decimal.RequireFromString("500")},
		}

		avg := AverageMonthlySpend(periods)

		if !avg.Equal(decimal.RequireFromString("400")) {
			t.Errorf("expected 400, got %s", avg)
		}
	})

	t.Run("empty input is zero", func(t *testing.T) {
		if avg := AverageMonthlySpend(nil); !avg.IsZero() {
			t.Errorf("expected zero, got %s", avg)
		}
	})
}
