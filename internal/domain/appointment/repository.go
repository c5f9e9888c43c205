package appointment

import (
	"context"
	"time"

	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Hospital --------
	GetHospitalByID(
		ctx context.Context,
		id uint,
	) (*models.Hospital, error)

	// -------- Doctor --------
	GetDoctor(
		ctx context.Context,
		hospitalID uint,
		doctorID uint,
	) (*models.User, error)

	GetAvailabilityDays(
		ctx context.Context,
		doctorID uint,
	) ([]models.AvailabilityDay, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertSlotFree(
		ctx context.Context,
		doctorID uint,
		date time.Time,
		timeSlot string,
	) error

	ListBookedSlots(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]string, error)

	// -------- Appointment (state change) --------
	GetAppointmentForPatient(
		ctx context.Context,
		appointmentID uint,
		patientID uint,
	) (*models.Appointment, error)

	GetAppointmentForDoctor(
		ctx context.Context,
		appointmentID uint,
		doctorID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctorPeriod(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
