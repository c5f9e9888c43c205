package appointment

import "github.com/CarePulseLabs/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusMissed    Status = "Missed"
	StatusRejected  Status = "Rejected"
	StatusFollowUp  Status = "Follow-up"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusMissed:    true,
	StatusRejected:  true,
	StatusFollowUp:  true,
}

// ParseStatus is the single conversion point from wire strings to the
// closed status set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !validStatuses[st] {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return st, nil
}

// ===============================
// Validations
// ===============================

// CanCancel defines whether an appointment may leave the scheduled state
// through cancellation
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete defines whether an appointment can be concluded
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
