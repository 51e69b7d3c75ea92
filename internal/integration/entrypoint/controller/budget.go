// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/application/usecase/budget"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
	"github.com/budget-questor/backend/internal/integration/entrypoint/dto"
	"github.com/budget-questor/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	setBudgetUseCase *budget.SetBudgetUseCase
	getBudgetUseCase *budget.GetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setBudgetUseCase *budget.SetBudgetUseCase,
	getBudgetUseCase *budget.GetBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		setBudgetUseCase: setBudgetUseCase,
		getBudgetUseCase: getBudgetUseCase,
	}
}

// SetBudget handles PUT /budget requests.
// The first call creates the budget; later calls replace its amount.
func (c *BudgetController) SetBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	input := budget.SetBudgetInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	}

	output, err := c.setBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// GetBudget handles GET /budget requests.
// Returns the unset response when the user has not configured a budget.
func (c *BudgetController) GetBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.GetBudgetInput{
		UserID: userID,
	}

	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// handleBudgetError maps budget domain errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := http.StatusInternalServerError
		if budgetErr.Code == domainerror.ErrCodeInvalidBudgetAmount {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
