package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Cancellation Eligibility
// ===============================

type Eligibility struct {
	CanCancel     bool           `json:"can_cancel"`
	Reason        string         `json:"reason"`
	TimeRemaining *time.Duration `json:"time_remaining"`
}

var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Evaluate decides whether a patient may still cancel an appointment at
// instant now, and produces the user-facing explanation. Pure function of
// its arguments; the caller supplies the live clock. The date string is
// interpreted in now's location. Fail-closed: no code path allows
// cancellation on error.
func Evaluate(date string, timeSlot string, status Status, now time.Time) (el Eligibility) {
	defer func() {
		if r := recover(); r != nil {
			el = Eligibility{CanCancel: false, Reason: "Unable to determine cancellation eligibility"}
		}
	}()

	if status != StatusScheduled {
		return Eligibility{CanCancel: false, Reason: "Appointment is not scheduled"}
	}

	day, ok := parseDate(date, now.Location())
	if !ok {
		return Eligibility{CanCancel: false, Reason: "Invalid appointment date"}
	}

	hour, minute := ParseClock(SlotStart(timeSlot))
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Eligibility{CanCancel: false, Reason: "Invalid appointment time"}
	}

	// The slot start governs scheduling; any time component carried by the
	// date string itself is discarded.
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())

	delta := start.Sub(now)
	el.TimeRemaining = &delta

	switch {
	case delta < 0:
		el.CanCancel = false
		el.Reason = "Appointment is in the past"

	case delta < time.Hour:
		mins := int(delta.Minutes())
		if mins < 0 {
			mins = 0
		}
		el.CanCancel = false
		el.Reason = fmt.Sprintf("Less than 1 hour remaining (%d minutes)", mins)

	case delta < 24*time.Hour:
		h := int(delta.Hours())
		m := int(delta.Minutes()) - h*60
		el.CanCancel = true
		el.Reason = fmt.Sprintf("Can cancel (%dh %dm remaining)", h, m)

	case delta < 7*24*time.Hour:
		d := int(delta.Hours()) / 24
		h := int(delta.Hours()) - d*24
		el.CanCancel = true
		el.Reason = fmt.Sprintf("Can cancel (%dd %dh remaining)", d, h)

	default:
		d := int(delta.Hours()) / 24
		el.CanCancel = true
		el.Reason = fmt.Sprintf("Can cancel (%d days remaining)", d)
	}

	return el
}
