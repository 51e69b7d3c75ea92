// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
	"github.com/budget-questor/backend/internal/integration/persistence/model"
)

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// Create persists a new period.
func (r *periodRepository) Create(ctx context.Context, period *entity.Period) error {
	periodModel := model.PeriodFromEntity(period)
	result := r.db.WithContext(ctx).Create(periodModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindActiveByUser retrieves the period whose window contains the given date.
func (r *periodRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Period, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, date, date).
		Order("start_date DESC").
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindAllByUser retrieves all periods for a user ordered by start date ascending.
func (r *periodRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Period, error) {
	var periodModels []model.PeriodModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&periodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	periods := make([]*entity.Period, len(periodModels))
	for i := range periodModels {
		periods[i] = periodModels[i].ToEntity()
	}
	return periods, nil
}

// FindLatestByUser retrieves the most recently started period for a user.
func (r *periodRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Period, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// IncrementTotalSpent adds delta to the period's running total with a
// server-side update expression, so concurrent writers never lose updates.
func (r *periodRepository) IncrementTotalSpent(ctx context.Context, periodID uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.PeriodModel{}).
		Where("id = ?", periodID).
		Updates(map[string]any{
			"total_spent": gorm.Expr("total_spent + ?", delta),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPeriodNotFound
	}
	return nil
}
