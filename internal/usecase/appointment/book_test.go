package appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

// offerEveryDay makes the doctor offer the given slots all week, so the
// tests are independent of which weekday they run on.
func offerEveryDay(r *fakeRepo, slots string) {
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		r.days = append(r.days, models.AvailabilityDay{
			DoctorID: r.doctor.ID,
			Day:      day,
			Slots:    slots,
		})
	}
}

func bookingInput(date string) BookAppointmentInput {
	return BookAppointmentInput{
		HospitalID: 1,
		PatientID:  42,
		DoctorID:   7,
		Date:       date,
		TimeSlot:   "09:00-10:00",
		Notes:      "first visit",
	}
}

func nextWeek() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestBookAppointment(t *testing.T) {
	repo := newFakeRepo()
	offerEveryDay(repo, "09:00-10:00,10:00-11:00")

	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), bookingInput(nextWeek()))
	require.NoError(t, err)

	assert.Equal(t, uint(42), ap.PatientID)
	assert.Equal(t, uint(7), ap.DoctorID)
	assert.Equal(t, "09:00-10:00", ap.TimeSlot)
	assert.Equal(t, "Scheduled", ap.Status)
	// The hospital charges a booking fee, so it starts unpaid.
	assert.Equal(t, models.FeeUnpaid, ap.BookingFeeStatus)
	assert.NotZero(t, ap.ID)
}

func TestBookAppointmentFreeHospitalSkipsFee(t *testing.T) {
	repo := newFakeRepo()
	repo.hospital.BookingFeePaise = 0
	offerEveryDay(repo, "09:00-10:00")

	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), bookingInput(nextWeek()))
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, ap.BookingFeeStatus)
}

func TestBookAppointmentInvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput("next tuesday"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestBookAppointmentTooSoon(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, nil)

	// Midnight today is always inside the two-hour advance window.
	in := bookingInput(time.Now().UTC().Format("2006-01-02"))
	in.TimeSlot = "00:00-00:30"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
	assert.Nil(t, repo.created)
}

func TestBookAppointmentSlotNotOffered(t *testing.T) {
	repo := newFakeRepo()
	offerEveryDay(repo, "14:00-15:00")

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput(nextWeek()))
	assert.True(t, httperr.IsBusiness(err, "slot_not_offered"))
}

func TestBookAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	offerEveryDay(repo, "09:00-10:00")
	repo.assertErr = httperr.ErrBusiness("slot_taken")

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput(nextWeek()))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestBookAppointmentUniqueViolationMapsToSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	offerEveryDay(repo, "09:00-10:00")
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_doctor_date_slot"}

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput(nextWeek()))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, nil)

	in := bookingInput(nextWeek())
	in.DoctorID = 999

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestBookAppointmentStoresMidnightDate(t *testing.T) {
	repo := newFakeRepo()
	offerEveryDay(repo, "09:00-10:00")

	uc := NewBookAppointment(repo, nil)

	dateStr := nextWeek()
	ap, err := uc.Execute(context.Background(), bookingInput(dateStr))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ap.Date.Format(time.RFC3339), dateStr+"T00:00:00"))
}
