package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousWeekStart_AlwaysLandsOnSunday(t *testing.T) {
	// One of each weekday.
	for day := 0; day < 7; day++ {
		now := time.Date(2026, 8, 24+day, 15, 30, 0, 0, time.UTC)

		got, err := time.Parse(time.DateOnly, previousWeekStart(now))
		require.NoError(t, err)

		assert.Equal(t, time.Sunday, got.Weekday(), "from %s (%s)", now.Format(time.DateOnly), now.Weekday())
	}
}

func TestPreviousWeekStart_IsTheCompletedWeek(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{now: "2026-08-30", want: "2026-08-23"}, // Sunday: last week just ended
		{now: "2026-08-31", want: "2026-08-23"}, // Monday
		{now: "2026-09-05", want: "2026-08-23"}, // Saturday: current week still running
		{now: "2026-09-06", want: "2026-08-30"}, // next Sunday rolls the window
	}

	for _, tt := range tests {
		now, err := time.Parse(time.DateOnly, tt.now)
		require.NoError(t, err)

		assert.Equal(t, tt.want, previousWeekStart(now), "now=%s", tt.now)
	}
}
