package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

// Wednesday.
var slotDate = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

func TestGetFreeSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.days = []models.AvailabilityDay{
		{DoctorID: 7, Day: "wednesday", Slots: "09:00-10:00,10:00-11:00,11:00-12:00"},
	}
	repo.booked = []string{"10:00-11:00"}

	uc := NewGetFreeSlots(repo)

	free, err := uc.Execute(context.Background(), 1, 7, slotDate)
	require.NoError(t, err)

	// Display order survives, booked slots drop out.
	assert.Equal(t, []string{"09:00-10:00", "11:00-12:00"}, free)
}

func TestGetFreeSlotsNoAvailabilityThatDay(t *testing.T) {
	repo := newFakeRepo()
	repo.days = []models.AvailabilityDay{
		{DoctorID: 7, Day: "thursday", Slots: "09:00-10:00"},
	}

	uc := NewGetFreeSlots(repo)

	free, err := uc.Execute(context.Background(), 1, 7, slotDate)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestGetFreeSlotsFullyBooked(t *testing.T) {
	repo := newFakeRepo()
	repo.days = []models.AvailabilityDay{
		{DoctorID: 7, Day: "wednesday", Slots: "09:00-10:00,10:00-11:00"},
	}
	repo.booked = []string{"09:00-10:00", "10:00-11:00"}

	uc := NewGetFreeSlots(repo)

	free, err := uc.Execute(context.Background(), 1, 7, slotDate)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestGetFreeSlotsUnknownDoctor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetFreeSlots(repo)

	_, err := uc.Execute(context.Background(), 1, 999, slotDate)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}
