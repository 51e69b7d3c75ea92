// Package dashboard contains dashboard-related use cases and the pure
// aggregation helpers they share.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// MonthlySpending is one point in the spending-history series: a period's
// denormalized total labeled by the month its window started in.
type MonthlySpending struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTotal is a category's summed amount.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// AggregateByCategory sums expense amounts per category. Categories outside
// the suggested set are accepted and aggregated like any other.
func AggregateByCategory(expenses []*entity.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(expenses))
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}
	return totals
}

// TotalSpent sums all expense amounts. Zero for an empty collection; the
// result does not depend on input order.
func TotalSpent(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// AggregateByMonth builds the spending-history series from periods ordered
// ascending by start date. Amounts are taken from each period's denormalized
// total, not recomputed from raw expenses.
func AggregateByMonth(periods []*entity.Period) []MonthlySpending {
	series := make([]MonthlySpending, 0, len(periods))
	for _, p := range periods {
		series = append(series, MonthlySpending{
			Month:  p.StartDate.Format("Jan 2006"),
			Amount: p.TotalSpent,
		})
	}
	return series
}

// MostSpentCategory returns the category with the highest total. Ties are
// broken by the lexicographically smallest category name so the result is
// deterministic. Returns ok=false for an empty mapping.
func MostSpentCategory(totals map[string]decimal.Decimal) (category string, total decimal.Decimal, ok bool) {
	if len(totals) == 0 {
		return "", decimal.Zero, false
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	category = names[0]
	total = totals[category]
	for _, name := range names[1:] {
		if totals[name].GreaterThan(total) {
			category = name
			total = totals[name]
		}
	}
	return category, total, true
}

// SortedCategoryTotals flattens a category mapping into a slice sorted by
// total descending, name ascending on equal totals.
func SortedCategoryTotals(totals map[string]decimal.Decimal) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total.Equal(result[j].Total) {
			return result[i].Category < result[j].Category
		}
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}
