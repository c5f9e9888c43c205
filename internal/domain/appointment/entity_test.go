package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

func scheduledAt(date time.Time, slot string) *models.Appointment {
	return &models.Appointment{
		Date:             date,
		TimeSlot:         slot,
		Status:           string(StatusScheduled),
		BookingFeeStatus: models.FeePaid,
	}
}

func TestCancelRefundsWithFullDayNotice(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), "15:00-16:00")

	err := Cancel(ap, noon)
	require.NoError(t, err)

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, models.FeeRefunded, ap.BookingFeeStatus)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, noon, *ap.CancelledAt)
}

func TestCancelForfeitsInsideADay(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "18:30-19:30")

	err := Cancel(ap, noon)
	require.NoError(t, err)

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, models.FeeForfeited, ap.BookingFeeStatus)
}

func TestCancelLeavesUnpaidFeeAlone(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), "15:00-16:00")
	ap.BookingFeeStatus = models.FeeUnpaid

	require.NoError(t, Cancel(ap, noon))
	assert.Equal(t, models.FeeUnpaid, ap.BookingFeeStatus)
}

func TestCancelRefusedInsideWindow(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "12:30-13:30")

	err := Cancel(ap, noon)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "cancellation_window_closed"))
	assert.Equal(t, "Less than 1 hour remaining (30 minutes)", httperr.BusinessMessage(err))

	// Nothing changed.
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, models.FeePaid, ap.BookingFeeStatus)
	assert.Nil(t, ap.CancelledAt)
}

func TestCancelRefusedForNonScheduled(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), "15:00-16:00")
	ap.Status = string(StatusCompleted)

	err := Cancel(ap, noon)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	require.NoError(t, Complete(ap, noon))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// A second completion is refused.
	err := Complete(ap, noon)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkFollowUp(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	err := MarkFollowUp(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	require.NoError(t, Complete(ap, noon))
	require.NoError(t, MarkFollowUp(ap))
	assert.Equal(t, string(StatusFollowUp), ap.Status)
}

func TestReject(t *testing.T) {
	ap := scheduledAt(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	require.NoError(t, Reject(ap))
	assert.Equal(t, string(StatusRejected), ap.Status)

	err := Reject(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("Follow-up")
	require.NoError(t, err)
	assert.Equal(t, StatusFollowUp, st)

	_, err = ParseStatus("scheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
