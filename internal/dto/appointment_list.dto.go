package dto

import "time"

type AppointmentListDTO struct {
	ID       uint      `json:"id"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"time_slot"`
	Status   string    `json:"status"`

	DoctorName  string `json:"doctor_name,omitempty"`
	PatientName string `json:"patient_name,omitempty"`

	Notes string `json:"notes"`
}
