package appointment

import (
	"context"

	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/dto"
)

type ListAppointmentsForPatient struct {
	repo domain.Repository
}

func NewListAppointmentsForPatient(
	repo domain.Repository,
) *ListAppointmentsForPatient {
	return &ListAppointmentsForPatient{
		repo: repo,
	}
}

func (uc *ListAppointmentsForPatient) Execute(
	ctx context.Context,
	patientID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			TimeSlot:   ap.TimeSlot,
			Status:     ap.Status,
			DoctorName: ap.Doctor.Name,
			Notes:      ap.Notes,
		})
	}

	return out, nil
}
