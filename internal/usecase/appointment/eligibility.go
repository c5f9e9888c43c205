package appointment

import (
	"context"

	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
)

type GetCancellationEligibility struct {
	repo domain.Repository
}

func NewGetCancellationEligibility(repo domain.Repository) *GetCancellationEligibility {
	return &GetCancellationEligibility{repo: repo}
}

// Execute returns the evaluator's verdict for the UI: the frontend
// enables its Cancel affordance from CanCancel and shows Reason verbatim.
func (uc *GetCancellationEligibility) Execute(
	ctx context.Context,
	hospitalID uint,
	patientID uint,
	appointmentID uint,
) (domain.Eligibility, error) {

	hospital, err := uc.repo.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		return domain.Eligibility{}, err
	}

	ap, err := uc.repo.GetAppointmentForPatient(ctx, appointmentID, patientID)
	if err != nil {
		return domain.Eligibility{}, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(hospital.Timezone)
	date := ap.Date.In(now.Location()).Format("2006-01-02")

	return domain.Evaluate(date, ap.TimeSlot, domain.Status(ap.Status), now), nil
}
