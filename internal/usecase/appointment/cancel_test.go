package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

func seedAppointment(repo *fakeRepo, daysAhead int) *models.Appointment {
	date := time.Now().UTC().AddDate(0, 0, daysAhead)
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	ap := &models.Appointment{
		ID:               200,
		HospitalID:       1,
		DoctorID:         7,
		PatientID:        42,
		Date:             midnight,
		TimeSlot:         "10:00-11:00",
		Status:           string(domain.StatusScheduled),
		BookingFeeStatus: models.FeePaid,
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestCancelAppointmentWithNotice(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, 3)

	uc := NewCancelAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 42, 200)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Equal(t, models.FeeRefunded, ap.BookingFeeStatus)
	assert.NotNil(t, ap.CancelledAt)
}

func TestCancelAppointmentInThePast(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, -2)

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 42, 200)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "cancellation_window_closed"))
	assert.Equal(t, "Appointment is in the past", httperr.BusinessMessage(err))
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
}

func TestCancelAppointmentAlreadyCancelled(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, 3)
	ap.Status = string(domain.StatusCancelled)

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 42, 200)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointmentWrongPatient(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, 3)

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 99, 200)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestGetCancellationEligibility(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, 10)

	uc := NewGetCancellationEligibility(repo)

	el, err := uc.Execute(context.Background(), 1, 42, 200)
	require.NoError(t, err)

	assert.True(t, el.CanCancel)
	assert.Contains(t, el.Reason, "days remaining")
	require.NotNil(t, el.TimeRemaining)
	assert.Greater(t, *el.TimeRemaining, 7*24*time.Hour)
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, 0)

	uc := NewCompleteAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 7, 200)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	_, err = uc.Execute(context.Background(), 1, 7, 200)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
