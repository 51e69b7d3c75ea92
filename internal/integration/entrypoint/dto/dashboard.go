// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-questor/backend/internal/application/usecase/dashboard"
)

// CategoryTotalResponse represents one category's spending in API responses.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Period         PeriodResponse          `json:"period"`
	Expenses       []ExpenseResponse       `json:"expenses"`
	CategoryTotals []CategoryTotalResponse `json:"category_totals"`
	TotalSpent     float64                 `json:"total_spent"`
	BudgetAmount   float64                 `json:"budget_amount"`
	BudgetLeft     float64                 `json:"budget_left"`
	HasBudget      bool                    `json:"has_budget"`
}

// MonthlySpendingResponse represents one month's spending in API responses.
type MonthlySpendingResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// SpendingHistoryResponse represents the response for the spending history API.
type SpendingHistoryResponse struct {
	MonthlySpending   []MonthlySpendingResponse `json:"monthly_spending"`
	CategoryTotals    []CategoryTotalResponse   `json:"category_totals"`
	TotalSpent        float64                   `json:"total_spent"`
	AvgMonthlySpend   float64                   `json:"avg_monthly_spend"`
	MostSpentCategory string                    `json:"most_spent_category"`
}

// InvestmentOverviewResponse represents the response for the investment overview API.
type InvestmentOverviewResponse struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	SavingsRate     float64 `json:"savings_rate"`
	Tier            string  `json:"tier"`
	Recommendation  string  `json:"recommendation"`
}

// ToCategoryTotalResponses converts category totals to their DTO form.
func ToCategoryTotalResponses(totals []dashboard.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(totals))
	for i, ct := range totals {
		total, _ := ct.Total.Float64()
		out[i] = CategoryTotalResponse{
			Category: ct.Category,
			Total:    total,
		}
	}
	return out
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	totalSpent, _ := output.TotalSpent.Float64()
	budgetAmount, _ := output.BudgetAmount.Float64()
	budgetLeft, _ := output.BudgetLeft.Float64()

	return DashboardResponse{
		Period:         ToPeriodResponse(output.Period),
		Expenses:       expenses,
		CategoryTotals: ToCategoryTotalResponses(output.CategoryTotals),
		TotalSpent:     totalSpent,
		BudgetAmount:   budgetAmount,
		BudgetLeft:     budgetLeft,
		HasBudget:      output.HasBudget,
	}
}

// ToSpendingHistoryResponse converts a GetSpendingHistoryOutput to its DTO form.
func ToSpendingHistoryResponse(output *dashboard.GetSpendingHistoryOutput) SpendingHistoryResponse {
	monthly := make([]MonthlySpendingResponse, len(output.MonthlySpending))
	for i, ms := range output.MonthlySpending {
		amount, _ := ms.Amount.Float64()
		monthly[i] = MonthlySpendingResponse{
			Month:  ms.Month,
			Amount: amount,
		}
	}

	totalSpent, _ := output.TotalSpent.Float64()
	avgMonthly, _ := output.AvgMonthlySpend.Float64()

	return SpendingHistoryResponse{
		MonthlySpending:   monthly,
		CategoryTotals:    ToCategoryTotalResponses(output.CategoryTotals),
		TotalSpent:        totalSpent,
		AvgMonthlySpend:   avgMonthly,
		MostSpentCategory: output.MostSpentCategory,
	}
}

// ToInvestmentOverviewResponse converts a GetInvestmentOverviewOutput to its DTO form.
func ToInvestmentOverviewResponse(output *dashboard.GetInvestmentOverviewOutput) InvestmentOverviewResponse {
	income, _ := output.MonthlyIncome.Float64()
	expenses, _ := output.MonthlyExpenses.Float64()
	savingsRate, _ := output.SavingsRate.Float64()

	return InvestmentOverviewResponse{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		SavingsRate:     savingsRate,
		Tier:            string(output.Tier),
		Recommendation:  output.Recommendation,
	}
}
