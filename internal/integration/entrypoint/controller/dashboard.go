// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-questor/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
	"github.com/budget-questor/backend/internal/integration/entrypoint/dto"
	"github.com/budget-questor/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard, spending history, and investment
// overview endpoints.
type DashboardController struct {
	getDashboardUseCase          *dashboard.GetDashboardUseCase
	getSpendingHistoryUseCase    *dashboard.GetSpendingHistoryUseCase
	getInvestmentOverviewUseCase *dashboard.GetInvestmentOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getSpendingHistoryUseCase *dashboard.GetSpendingHistoryUseCase,
	getInvestmentOverviewUseCase *dashboard.GetInvestmentOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase:          getDashboardUseCase,
		getSpendingHistoryUseCase:    getSpendingHistoryUseCase,
		getInvestmentOverviewUseCase: getInvestmentOverviewUseCase,
	}
}

// GetDashboard handles GET /dashboard requests.
// Visiting the dashboard resolves the active period, creating one lazily
// when the user has no period covering today.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetDashboardInput{
		UserID: userID,
		Today:  time.Now().UTC(),
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetSpendingHistory handles GET /profile/history requests.
func (c *DashboardController) GetSpendingHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSpendingHistoryInput{
		UserID: userID,
	}

	output, err := c.getSpendingHistoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingHistoryResponse(output))
}

// GetInvestmentOverview handles GET /investment/overview requests.
func (c *DashboardController) GetInvestmentOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetInvestmentOverviewInput{
		UserID: userID,
	}

	output, err := c.getInvestmentOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentOverviewResponse(output))
}

// handleDashboardError maps period domain errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
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
