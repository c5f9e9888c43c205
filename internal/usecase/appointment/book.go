package appointment

import (
	"context"
	"time"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/domain/availability"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	HospitalID uint
	PatientID  uint
	DoctorID   uint

	Date     string // YYYY-MM-DD
	TimeSlot string // HH:MM-HH:MM, one of the doctor's offered slots
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	hospital, err := uc.repo.GetHospitalByID(ctx, in.HospitalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(hospital.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Visit start = date + the slot's start time
	hour, minute := domain.ParseClock(domain.SlotStart(in.TimeSlot))
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)

	minAdvance := hospital.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(hospital.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	doctor, err := uc.repo.GetDoctor(ctx, in.HospitalID, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	// The requested slot must be one the doctor actually offers that weekday.
	days, err := uc.repo.GetAvailabilityDays(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	week, err := availability.LoadWeek(toDayAvailability(days))
	if err != nil {
		return nil, err
	}

	weekday := availability.FromWeekday(start.Weekday())
	if !week.HasSlot(weekday, in.TimeSlot) {
		return nil, httperr.ErrBusiness("slot_not_offered")
	}

	if err := uc.repo.AssertSlotFree(ctx, doctor.ID, date, in.TimeSlot); err != nil {
		return nil, err
	}

	feeStatus := models.FeePaid
	if hospital.BookingFeePaise > 0 {
		feeStatus = models.FeeUnpaid
	}

	ap := &models.Appointment{
		HospitalID:       in.HospitalID,
		DoctorID:         doctor.ID,
		PatientID:        in.PatientID,
		Date:             date,
		TimeSlot:         in.TimeSlot,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
		BookingFeeStatus: feeStatus,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		HospitalID: in.HospitalID,
		UserID:     &in.PatientID,
		Action:     "appointment_booked",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func toDayAvailability(days []models.AvailabilityDay) []availability.DayAvailability {
	out := make([]availability.DayAvailability, 0, len(days))
	for _, d := range days {
		slots := availability.DecodeSlots(d.Slots)
		encoded := make([]string, 0, len(slots))
		for _, s := range slots {
			encoded = append(encoded, s.String())
		}
		out = append(out, availability.DayAvailability{Day: d.Day, Slots: encoded})
	}
	return out
}
