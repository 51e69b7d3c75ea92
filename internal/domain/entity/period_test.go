package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewPeriod(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2025, 6, 10, 17, 45, 12, 0, time.UTC)

	p := NewPeriod(userID, start)

	wantStart := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !p.StartDate.Equal(wantStart) {
		t.Errorf("expected start truncated to the day, got %s", p.StartDate)
	}
	if !p.EndDate.Equal(wantStart.AddDate(0, 0, PeriodLengthDays)) {
		t.Errorf("expected a %d day window, got end %s", PeriodLengthDays, p.EndDate)
	}
	if !p.TotalSpent.IsZero() {
		t.Errorf("expected zero running total, got %s", p.TotalSpent)
	}
	if p.UserID != userID {
		t.Errorf("expected user %s, got %s", userID, p.UserID)
	}
}

func TestPeriodContains(t *testing.T) {
	p := NewPeriod(uuid.New(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{name: "day before start", date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "start date is inclusive", date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "middle of the window", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "end date is inclusive", date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "day after end", date: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "time of day is ignored", date: time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.date); got != tt.expected {
				t.Errorf("Contains(%s) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}
