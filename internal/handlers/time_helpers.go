package handlers

import (
	"time"

	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
)

// Every calendar computation happens in the hospital's timezone.

func locationFromHospital(h *models.Hospital) *time.Location {
	if h != nil {
		return timezone.Location(h.Timezone)
	}
	return timezone.Location("")
}

func parseDateInHospital(h *models.Hospital, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromHospital(h),
	)
}
