package appointment

import (
	"strconv"
	"strings"
)

// SlotStart extracts the start-time substring of a slot: the text before
// the first "-", or the whole string for a single time.
func SlotStart(timeSlot string) string {
	if i := strings.Index(timeSlot, "-"); i >= 0 {
		return timeSlot[:i]
	}
	return timeSlot
}

// ParseClock parses a 24-hour (hours, minutes) pair from a start-time
// substring. An optional trailing AM/PM marker is honoured, a missing
// minutes component defaults to 0, and unparseable numeric components
// fall back to 0 instead of failing.
func ParseClock(raw string) (int, int) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	pm := strings.HasSuffix(s, "PM")
	am := strings.HasSuffix(s, "AM")
	if pm || am {
		s = strings.TrimSpace(s[:len(s)-2])
	}

	var hour, minute int
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	if pm && hour < 12 {
		hour += 12
	}
	if am && hour == 12 {
		hour = 0
	}

	return hour, minute
}
