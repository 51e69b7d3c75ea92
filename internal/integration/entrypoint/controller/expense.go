// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/usecase/expense"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
	"github.com/budget-questor/backend/internal/integration/entrypoint/dto"
	"github.com/budget-questor/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addExpenseUseCase   *expense.AddExpenseUseCase
	listExpensesUseCase *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addExpenseUseCase *expense.AddExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		addExpenseUseCase:   addExpenseUseCase,
		listExpensesUseCase: listExpensesUseCase,
	}
}

// AddExpense handles POST /expenses requests.
func (c *ExpenseController) AddExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	input := expense.AddExpenseInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     date,
		Today:    time.Now().UTC(),
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAddExpenseResponse(output))
}

// ListExpenses handles GET /expenses requests.
// It returns the expenses of the user's current 30-day period.
func (c *ExpenseController) ListExpenses(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ListExpensesInput{
		UserID: userID,
		Today:  time.Now().UTC(),
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListExpensesResponse(output))
}

// handleExpenseError maps expense and period domain errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		statusCode := http.StatusInternalServerError
		switch expenseErr.Code {
		case domainerror.ErrCodeInvalidExpenseAmount,
			domainerror.ErrCodeMissingExpenseCategory,
			domainerror.ErrCodeInvalidExpenseDate:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var periodErr *domainerror.PeriodError
	if errors.As(err, &periodErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: periodErr.Message,
			Code:  string(periodErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
