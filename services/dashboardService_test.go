package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		baseline float64
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero baseline positive current", 42, 0, 0},
		{"zero baseline zero current", 0, 0, 0},
		{"zero baseline negative current", -42, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.baseline), 1e-9)
		})
	}
}

func TestStartOfToday(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 42, 7, 123, time.UTC)

	got := startOfToday(now)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestBaselineWindowUsesCalendarMonth(t *testing.T) {
	// calendar-month subtraction, not 30 days: Go normalizes Mar 31 - 1 month
	// to Mar 3 (Feb has 28 days in 2025)
	today := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), today.AddDate(0, -1, 0))

	// regular months land on the same day number
	today = time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), today.AddDate(0, -1, 0))
}
