package models

import "time"

const (
	FeeUnpaid    = "unpaid"
	FeePaid      = "paid"
	FeeRefunded  = "refunded"
	FeeForfeited = "forfeited"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HospitalID uint     `json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	DoctorID uint `gorm:"uniqueIndex:idx_doctor_date_slot" json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	PatientID uint `json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	// Calendar date of the visit, local midnight in the hospital timezone.
	Date time.Time `gorm:"uniqueIndex:idx_doctor_date_slot" json:"date"`

	// "HH:MM-HH:MM" taken from the doctor's weekly availability.
	TimeSlot string `gorm:"size:20;uniqueIndex:idx_doctor_date_slot" json:"time_slot"`

	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	Notes            string `gorm:"size:255" json:"notes"`
	BookingFeeStatus string `gorm:"size:20;default:'unpaid'" json:"booking_fee_status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
