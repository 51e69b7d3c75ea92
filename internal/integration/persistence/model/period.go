// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-questor/backend/internal/domain/entity"
)

// PeriodModel represents the periods table in the database.
type PeriodModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate  time.Time       `gorm:"type:date;not null;index"`
	EndDate    time.Time       `gorm:"type:date;not null;index"`
	TotalSpent decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PeriodModel.
func (PeriodModel) TableName() string {
	return "periods"
}

// ToEntity converts a PeriodModel to a domain Period entity.
func (m *PeriodModel) ToEntity() *entity.Period {
	return &entity.Period{
		ID:         m.ID,
		UserID:     m.UserID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		TotalSpent: m.TotalSpent,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// PeriodFromEntity creates a PeriodModel from a domain Period entity.
func PeriodFromEntity(period *entity.Period) *PeriodModel {
	return &PeriodModel{
		ID:         period.ID,
		UserID:     period.UserID,
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
		TotalSpent: period.TotalSpent,
		CreatedAt:  period.CreatedAt,
		UpdatedAt:  period.UpdatedAt,
	}
}
