// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-questor/backend/internal/application/usecase/expense"
	"github.com/budget-questor/backend/internal/domain/entity"
)

// AddExpenseRequest represents the request body for recording an expense.
type AddExpenseRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID       string  `json:"id"`
	PeriodID string  `json:"period_id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// PeriodResponse represents an accounting period in API responses.
type PeriodResponse struct {
	ID         string  `json:"id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalSpent float64 `json:"total_spent"`
}

// AddExpenseResponse represents the response for recording an expense.
type AddExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Period  PeriodResponse  `json:"period"`
}

// ListExpensesResponse represents the response for listing period expenses.
type ListExpensesResponse struct {
	Period   PeriodResponse    `json:"period"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	amount, _ := e.Amount.Float64()
	return ExpenseResponse{
		ID:       e.ID.String(),
		PeriodID: e.PeriodID.String(),
		Category: e.Category,
		Amount:   amount,
		Date:     e.Date.Format("2006-01-02"),
	}
}

// ToPeriodResponse converts a domain Period entity to a PeriodResponse DTO.
func ToPeriodResponse(p *entity.Period) PeriodResponse {
	totalSpent, _ := p.TotalSpent.Float64()
	return PeriodResponse{
		ID:         p.ID.String(),
		StartDate:  p.StartDate.Format("2006-01-02"),
		EndDate:    p.EndDate.Format("2006-01-02"),
		TotalSpent: totalSpent,
	}
}

// ToAddExpenseResponse converts an AddExpenseOutput to an AddExpenseResponse DTO.
func ToAddExpenseResponse(output *expense.AddExpenseOutput) AddExpenseResponse {
	return AddExpenseResponse{
		Expense: ToExpenseResponse(output.Expense),
		Period:  ToPeriodResponse(output.Period),
	}
}

// ToListExpensesResponse converts a ListExpensesOutput to a ListExpensesResponse DTO.
func ToListExpensesResponse(output *expense.ListExpensesOutput) ListExpensesResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ListExpensesResponse{
		Period:   ToPeriodResponse(output.Period),
		Expenses: expenses,
	}
}
