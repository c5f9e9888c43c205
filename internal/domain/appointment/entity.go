package appointment

import (
	"time"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel runs the eligibility evaluator against the appointment and, when
// allowed, flips it to Cancelled. The evaluator's verdict is final: every
// refusal surfaces its reason, never a silent allow.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	date := ap.Date.In(now.Location()).Format("2006-01-02")
	el := Evaluate(date, ap.TimeSlot, Status(ap.Status), now)
	if !el.CanCancel {
		return httperr.ErrBusinessMsg("cancellation_window_closed", el.Reason)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now

	if ap.BookingFeeStatus == models.FeePaid {
		if RefundsOnCancel(el) {
			ap.BookingFeeStatus = models.FeeRefunded
		} else {
			ap.BookingFeeStatus = models.FeeForfeited
		}
	}

	return nil
}

// RefundsOnCancel applies the fee policy: cancellations with at least a
// full day of notice get the booking fee back.
func RefundsOnCancel(el Eligibility) bool {
	return el.TimeRemaining != nil && *el.TimeRemaining >= 24*time.Hour
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// MarkFollowUp flags a completed visit for a return consultation.
func MarkFollowUp(ap *models.Appointment) error {
	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.Status = string(StatusFollowUp)
	return nil
}

// Reject is the doctor-side refusal of a scheduled booking.
func Reject(ap *models.Appointment) error {
	if Status(ap.Status) != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.Status = string(StatusRejected)
	return nil
}
