package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday, 10 March 2026, noon.
var noon = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestEvaluateRejectsNonScheduled(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled, StatusMissed, StatusRejected, StatusFollowUp} {
		el := Evaluate("2026-03-20", "09:00-10:00", status, noon)

		assert.False(t, el.CanCancel, "status %s", status)
		assert.Equal(t, "Appointment is not scheduled", el.Reason)
		assert.Nil(t, el.TimeRemaining)
	}
}

func TestEvaluateInvalidDate(t *testing.T) {
	for _, date := range []string{"", "10-03-2026", "tomorrow", "2026/03/10"} {
		el := Evaluate(date, "09:00-10:00", StatusScheduled, noon)

		assert.False(t, el.CanCancel, "date %q", date)
		assert.Equal(t, "Invalid appointment date", el.Reason)
	}
}

func TestEvaluateInvalidTime(t *testing.T) {
	el := Evaluate("2026-03-20", "25:00-26:00", StatusScheduled, noon)

	assert.False(t, el.CanCancel)
	assert.Equal(t, "Invalid appointment time", el.Reason)
}

func TestEvaluatePast(t *testing.T) {
	el := Evaluate("2026-03-10", "09:00-10:00", StatusScheduled, noon)

	assert.False(t, el.CanCancel)
	assert.Equal(t, "Appointment is in the past", el.Reason)
	require.NotNil(t, el.TimeRemaining)
	assert.Equal(t, -3*time.Hour, *el.TimeRemaining)
}

func TestEvaluateLadder(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeSlot  string
		canCancel bool
		reason    string
	}{
		{
			name:      "under an hour",
			date:      "2026-03-10",
			timeSlot:  "12:45-13:45",
			canCancel: false,
			reason:    "Less than 1 hour remaining (45 minutes)",
		},
		{
			// Exactly one hour left falls on the cancellable side.
			name:      "exactly one hour",
			date:      "2026-03-10",
			timeSlot:  "13:00-14:00",
			canCancel: true,
			reason:    "Can cancel (1h 0m remaining)",
		},
		{
			name:      "same day evening",
			date:      "2026-03-10",
			timeSlot:  "18:30-19:30",
			canCancel: true,
			reason:    "Can cancel (6h 30m remaining)",
		},
		{
			// Exactly 24h reads as one day, zero hours.
			name:      "exactly one day",
			date:      "2026-03-11",
			timeSlot:  "12:00-13:00",
			canCancel: true,
			reason:    "Can cancel (1d 0h remaining)",
		},
		{
			name:      "days and hours",
			date:      "2026-03-13",
			timeSlot:  "15:00-16:00",
			canCancel: true,
			reason:    "Can cancel (3d 3h remaining)",
		},
		{
			name:      "a week or more",
			date:      "2026-03-20",
			timeSlot:  "12:00-13:00",
			canCancel: true,
			reason:    "Can cancel (10 days remaining)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := Evaluate(tt.date, tt.timeSlot, StatusScheduled, noon)

			assert.Equal(t, tt.canCancel, el.CanCancel)
			assert.Equal(t, tt.reason, el.Reason)
			require.NotNil(t, el.TimeRemaining)
		})
	}
}

func TestEvaluateDiscardsDateTimeComponent(t *testing.T) {
	// The slot start wins over whatever time the date string carries.
	el := Evaluate("2026-03-12T08:00:00", "14:00-15:00", StatusScheduled, noon)

	assert.True(t, el.CanCancel)
	assert.Equal(t, "Can cancel (2d 2h remaining)", el.Reason)
}

func TestEvaluateTwelveHourClock(t *testing.T) {
	el := Evaluate("2026-03-10", "2:30 PM-3:30 PM", StatusScheduled, noon)

	assert.True(t, el.CanCancel)
	assert.Equal(t, "Can cancel (2h 30m remaining)", el.Reason)
}

func TestEvaluateGarbledClockFallsBackToMidnight(t *testing.T) {
	// Unparseable components read as 00:00, which is already behind noon.
	el := Evaluate("2026-03-10", "ab:cd-ef:gh", StatusScheduled, noon)

	assert.False(t, el.CanCancel)
	assert.Equal(t, "Appointment is in the past", el.Reason)
}
