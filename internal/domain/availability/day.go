package availability

import (
	"strings"
	"time"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

// Day is a lowercase weekday name. Wire payloads carry capitalized names
// ("Monday"); ParseDay is the single conversion point.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// AllDays is the canonical week order, Monday first.
var AllDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns Monday through Friday.
func Weekdays() []Day {
	return AllDays[:5]
}

// FromWeekday maps the stdlib weekday to ours.
func FromWeekday(wd time.Weekday) Day {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func ParseDay(s string) (Day, error) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllDays {
		if d == known {
			return d, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_day")
}

// Title renders the wire form ("monday" -> "Monday").
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[0])) + string(d[1:])
}
