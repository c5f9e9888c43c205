package models

import "time"

const (
	BillUnpaid    = "unpaid"
	BillPaid      = "paid"
	BillCancelled = "cancelled"
)

// Amounts are stored in paise (smallest currency unit).
type Bill struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PatientID uint `gorm:"index" json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID uint `json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items"`

	TotalPaise int64  `json:"total_paise"`
	Status     string `gorm:"size:20;default:'unpaid'" json:"status"`
	Notes      string `gorm:"size:255" json:"notes"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BillItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	BillID uint `gorm:"index" json:"bill_id"`

	Description string `gorm:"size:255;not null" json:"description"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
	AmountPaise int64  `json:"amount_paise"`
}
