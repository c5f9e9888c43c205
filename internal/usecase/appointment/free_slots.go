package appointment

import (
	"context"
	"time"

	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/domain/availability"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

type GetFreeSlots struct {
	repo domain.Repository
}

func NewGetFreeSlots(repo domain.Repository) *GetFreeSlots {
	return &GetFreeSlots{repo: repo}
}

// Execute lists the doctor's offered slots for that date's weekday minus
// the ones already booked, in the availability editor's display order.
func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	hospitalID uint,
	doctorID uint,
	date time.Time,
) ([]string, error) {

	doctor, err := uc.repo.GetDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	days, err := uc.repo.GetAvailabilityDays(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	week, err := availability.LoadWeek(toDayAvailability(days))
	if err != nil {
		return nil, err
	}

	offered := week.Slots(availability.FromWeekday(date.Weekday()))
	if len(offered) == 0 {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedSlots(ctx, doctor.ID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}

	free := make([]string, 0, len(offered))
	for _, slot := range offered {
		if s := slot.String(); !taken[s] {
			free = append(free, s)
		}
	}

	return free, nil
}
