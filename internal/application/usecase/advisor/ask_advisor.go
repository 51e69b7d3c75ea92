// Package advisor contains the AI financial-advice use case.
package advisor

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// MaxQuestionLength is the maximum allowed length for an advisor question.
const MaxQuestionLength = 2000

// AskAdvisorInput represents the input for asking the advisor.
type AskAdvisorInput struct {
	UserID   uuid.UUID
	Question string
}

// AskAdvisorOutput represents the advisor's reply.
type AskAdvisorOutput struct {
	Advice string
}

// AskAdvisorUseCase forwards a free-text question to the external language
// model and returns its reply verbatim. The relay holds no state and never
// retries; callers must not assume idempotent or deterministic output.
type AskAdvisorUseCase struct {
	adviceService adapter.AdviceService
}

// NewAskAdvisorUseCase creates a new AskAdvisorUseCase instance.
func NewAskAdvisorUseCase(adviceService adapter.AdviceService) *AskAdvisorUseCase {
	return &AskAdvisorUseCase{
		adviceService: adviceService,
	}
}

// Execute relays the question to the upstream model.
func (uc *AskAdvisorUseCase) Execute(ctx context.Context, input AskAdvisorInput) (*AskAdvisorOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" || len(question) > MaxQuestionLength {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeEmptyQuestion,
			"question is required",
			domainerror.ErrEmptyQuestion,
		)
	}

	advice, err := uc.adviceService.GetAdvice(ctx, question)
	if err != nil {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceUnavailable,
			"advice unavailable",
			err,
		)
	}

	return &AskAdvisorOutput{Advice: advice}, nil
}
