package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

type fakeAdviceService struct {
	advice    string
	err       error
	questions []string
}

func (f *fakeAdviceService) GetAdvice(ctx context.Context, question string) (string, error) {
	f.questions = append(f.questions, question)
	if f.err != nil {
		return "", f.err
	}
	return f.advice, nil
}

func (f *fakeAdviceService) IsAvailable() bool {
	return true
}

func TestAskAdvisor(t *testing.T) {
	userID := uuid.New()

	t.Run("relays the reply verbatim", func(t *testing.T) {
		service := &fakeAdviceService{advice: "Pay off high-interest debt first."}
		uc := NewAskAdvisorUseCase(service)

		output, err := uc.Execute(context.Background(), AskAdvisorInput{
			UserID:   userID,
			Question: "  Should I invest or pay off debt?  ",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Advice != "Pay off high-interest debt first." {
			t.Errorf("expected the upstream reply verbatim, got %q", output.Advice)
		}
		if len(service.questions) != 1 || service.questions[0] != "Should I invest or pay off debt?" {
			t.Errorf("expected the trimmed question to be forwarded, got %v", service.questions)
		}
	})

	t.Run("rejects blank questions without calling upstream", func(t *testing.T) {
		for _, question := range []string{"", "   ", "\t\n"} {
			service := &fakeAdviceService{}
			uc := NewAskAdvisorUseCase(service)

			_, err := uc.Execute(context.Background(), AskAdvisorInput{UserID: userID, Question: question})

			var adviceErr *domainerror.AdviceError
			if !errors.As(err, &adviceErr) {
				t.Fatalf("expected AdviceError for %q, got %v", question, err)
			}
			if adviceErr.Code != domainerror.ErrCodeEmptyQuestion {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyQuestion, adviceErr.Code)
			}
			if len(service.questions) != 0 {
				t.Error("expected no upstream call for an invalid question")
			}
		}
	})

	t.Run("rejects oversized questions", func(t *testing.T) {
		service := &fakeAdviceService{}
		uc := NewAskAdvisorUseCase(service)

		_, err := uc.Execute(context.Background(), AskAdvisorInput{
			UserID:   userID,
			Question: strings.Repeat("a", MaxQuestionLength+1),
		})

		var adviceErr *domainerror.AdviceError
		if !errors.As(err, &adviceErr) {
			t.Fatalf("expected AdviceError, got %v", err)
		}
		if adviceErr.Code != domainerror.ErrCodeEmptyQuestion {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyQuestion, adviceErr.Code)
		}
	})

	t.Run("upstream failure is reported as unavailable", func(t *testing.T) {
		service := &fakeAdviceService{err: errors.New("upstream timeout")}
		uc := NewAskAdvisorUseCase(service)

		_, err := uc.Execute(context.Background(), AskAdvisorInput{UserID: userID, Question: "Any tips?"})

		var adviceErr *domainerror.AdviceError
		if !errors.As(err, &adviceErr) {
			t.Fatalf("expected AdviceError, got %v", err)
		}
		if adviceErr.Code != domainerror.ErrCodeAdviceUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAdviceUnavailable, adviceErr.Code)
		}
	})
}
