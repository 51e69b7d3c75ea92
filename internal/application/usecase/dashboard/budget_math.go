package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// InvestmentTier is a deterministic advice band derived from the savings rate.
type InvestmentTier string

const (
	// TierBuildFoundation applies below a 20% savings rate.
	TierBuildFoundation InvestmentTier = "build_foundation"
	// TierDiversify applies from 20% up to but not including 40%.
	TierDiversify InvestmentTier = "diversify"
	// TierAdvanced applies at 40% and above.
	TierAdvanced InvestmentTier = "advanced"
)

var tierRecommendations = map[InvestmentTier]string{
	TierBuildFoundation: "Focus on reducing expenses and building an emergency fund before investing.",
	TierDiversify:       "Consider diversifying into low and medium-risk instruments such as index funds.",
	TierAdvanced:        "Explore advanced strategies and retirement planning with your surplus.",
}

// Recommendation returns the display text for the tier.
func (t InvestmentTier) Recommendation() string {
	return tierRecommendations[t]
}

var (
	twenty  = decimal.NewFromInt(20)
	forty   = decimal.NewFromInt(40)
	hundred = decimal.NewFromInt(100)
)

// BudgetLeft returns the remaining budget after spending. A missing budget
// counts as zero; overspend yields a negative result, never clamped.
func BudgetLeft(budget *entity.Budget, totalSpent decimal.Decimal) decimal.Decimal {
	amount := decimal.Zero
	if budget != nil {
		amount = budget.Amount
	}
	return amount.Sub(totalSpent)
}

// SavingsRate returns (income - expenses) / income * 100 rounded to one
// decimal place, or zero when income is not positive.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred).Round(1)
}

// AverageMonthlySpend returns the mean of the periods' denormalized totals,
// or zero for an empty slice.
func AverageMonthlySpend(periods []*entity.Period) decimal.Decimal {
	if len(periods) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range periods {
		sum = sum.Add(p.TotalSpent)
	}
	return sum.Div(decimal.NewFromInt(int64(len(periods))))
}

// AdviceTier maps a savings rate to its investment advice band. Band lower
// bounds are inclusive: 20 falls in the diversify band, 40 in advanced.
func AdviceTier(savingsRate decimal.Decimal) InvestmentTier {
	switch {
	case savingsRate.GreaterThanOrEqual(forty):
		return TierAdvanced
	case savingsRate.GreaterThanOrEqual(twenty):
		return TierDiversify
	default:
		return TierBuildFoundation
	}
}
