package appointment

import (
	"context"
	"time"

	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

// fakeRepo is the in-memory repository the use-case tests run against.
type fakeRepo struct {
	hospital *models.Hospital
	doctor   *models.User
	days     []models.AvailabilityDay

	appointments map[uint]*models.Appointment
	booked       []string

	nextID    uint
	created   *models.Appointment
	createErr error
	assertErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hospital: &models.Hospital{
			ID:                1,
			Name:              "City Hospital",
			Timezone:          "UTC",
			MinAdvanceMinutes: 120,
			BookingFeePaise:   50000,
		},
		doctor: &models.User{
			ID:         7,
			HospitalID: 1,
			Name:       "Dr. Rao",
			Role:       models.RoleDoctor,
		},
		appointments: map[uint]*models.Appointment{},
		nextID:       100,
	}
}

func (r *fakeRepo) GetHospitalByID(_ context.Context, id uint) (*models.Hospital, error) {
	if r.hospital == nil || r.hospital.ID != id {
		return nil, httperr.ErrBusiness("hospital_not_found")
	}
	return r.hospital, nil
}

func (r *fakeRepo) GetDoctor(_ context.Context, hospitalID, doctorID uint) (*models.User, error) {
	if r.doctor == nil || r.doctor.ID != doctorID || r.doctor.HospitalID != hospitalID {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	return r.doctor, nil
}

func (r *fakeRepo) GetAvailabilityDays(_ context.Context, _ uint) ([]models.AvailabilityDay, error) {
	return r.days, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = ap
	r.created = ap
	return nil
}

func (r *fakeRepo) AssertSlotFree(_ context.Context, _ uint, _ time.Time, _ string) error {
	return r.assertErr
}

func (r *fakeRepo) ListBookedSlots(_ context.Context, _ uint, _ time.Time) ([]string, error) {
	return r.booked, nil
}

func (r *fakeRepo) GetAppointmentForPatient(_ context.Context, appointmentID, patientID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.PatientID != patientID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (r *fakeRepo) GetAppointmentForDoctor(_ context.Context, appointmentID, doctorID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.DoctorID != doctorID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) ListAppointmentsForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.PatientID == patientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDoctorPeriod(_ context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}
