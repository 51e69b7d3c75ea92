// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-questor/backend/internal/application/usecase/advisor"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
	"github.com/budget-questor/backend/internal/integration/entrypoint/dto"
	"github.com/budget-questor/backend/internal/integration/entrypoint/middleware"
)

// AdvisorController handles the financial advisor endpoint.
type AdvisorController struct {
	askAdvisorUseCase *advisor.AskAdvisorUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(askAdvisorUseCase *advisor.AskAdvisorUseCase) *AdvisorController {
	return &AdvisorController{
		askAdvisorUseCase: askAdvisorUseCase,
	}
}

// Ask handles POST /advisor/ask requests.
func (c *AdvisorController) Ask(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AskAdvisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyQuestion),
		})
		return
	}

	input := advisor.AskAdvisorInput{
		UserID:   userID,
		Question: req.Question,
	}

	output, err := c.askAdvisorUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskAdvisorResponse{
		Advice: output.Advice,
	})
}

// handleAdvisorError maps advice domain errors to HTTP responses. Upstream
// failures surface as 502 since the relay itself is healthy.
func (c *AdvisorController) handleAdvisorError(ctx *gin.Context, err error) {
	var adviceErr *domainerror.AdviceError
	if errors.As(err, &adviceErr) {
		statusCode := http.StatusBadGateway
		if adviceErr.Code == domainerror.ErrCodeEmptyQuestion {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: adviceErr.Message,
			Code:  string(adviceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
