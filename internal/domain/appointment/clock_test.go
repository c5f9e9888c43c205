package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStart(t *testing.T) {
	assert.Equal(t, "09:00", SlotStart("09:00-10:00"))
	assert.Equal(t, "09:00", SlotStart("09:00"))
	assert.Equal(t, "2:30 PM", SlotStart("2:30 PM-3:30 PM"))
	assert.Equal(t, "", SlotStart("-10:00"))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
	}{
		{"09:30", 9, 30},
		{"14", 14, 0},
		{"2:30 PM", 14, 30},
		{"2:30PM", 14, 30},
		{"12:00 PM", 12, 0},
		{"12:15 AM", 0, 15},
		{"11:45 am", 11, 45},
		{" 7:05 ", 7, 5},
		{"x:y", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		hour, minute := ParseClock(tt.in)
		assert.Equal(t, tt.hour, hour, "hour of %q", tt.in)
		assert.Equal(t, tt.minute, minute, "minute of %q", tt.in)
	}
}
