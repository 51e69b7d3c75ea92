// Package period contains accounting-period use cases.
package period

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

// ResolveActivePeriodInput represents the input for period resolution.
type ResolveActivePeriodInput struct {
	UserID uuid.UUID
	Today  time.Time
}

// ResolveActivePeriodOutput represents the output of period resolution.
type ResolveActivePeriodOutput struct {
	Period  *entity.Period
	Created bool
}

// ResolveActivePeriodUseCase determines the active 30-day accounting window
// for a user, creating one lazily when none contains today. Stale periods
// are never closed or backfilled: an account with a usage gap simply gets a
// fresh window on its next visit.
type ResolveActivePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewResolveActivePeriodUseCase creates a new ResolveActivePeriodUseCase instance.
func NewResolveActivePeriodUseCase(periodRepo adapter.PeriodRepository) *ResolveActivePeriodUseCase {
	return &ResolveActivePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute resolves the active period for the user.
func (uc *ResolveActivePeriodUseCase) Execute(ctx context.Context, input ResolveActivePeriodInput) (*ResolveActivePeriodOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	existing, err := uc.periodRepo.FindActiveByUser(ctx, input.UserID, today)
	if err == nil {
		return &ResolveActivePeriodOutput{Period: existing}, nil
	}
	if !errors.Is(err, domainerror.ErrPeriodNotFound) {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodePeriodLookupFailed,
			"failed to look up active period",
			err,
		)
	}

	period := entity.NewPeriod(input.UserID, today)
	if err := uc.periodRepo.Create(ctx, period); err != nil {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodePeriodCreationFailed,
			"failed to create period",
			err,
		)
	}

	slog.Info("Created new accounting period",
		"userID", input.UserID,
		"start", period.StartDate.Format("2006-01-02"),
		"end", period.EndDate.Format("2006-01-02"),
	)

	return &ResolveActivePeriodOutput{Period: period, Created: true}, nil
}
