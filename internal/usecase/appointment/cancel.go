package appointment

import (
	"context"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute is the patient-side cancellation: the eligibility evaluator is
// re-run server-side against the hospital clock, so a stale UI can never
// cancel past the window.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	hospitalID uint,
	patientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	hospital, err := uc.repo.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForPatient(ctx, appointmentID, patientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(hospital.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		UserID:     &patientID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"booking_fee_status": ap.BookingFeeStatus,
		},
	})

	return ap, nil
}
