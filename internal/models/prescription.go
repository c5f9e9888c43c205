package models

import "time"

const (
	PrescriptionNew       = "New"
	PrescriptionFilled    = "Filled"
	PrescriptionPartial   = "Partially Filled"
	PrescriptionCancelled = "Cancelled"
)

type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PatientID uint `gorm:"index" json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID uint `json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Diagnosis string `gorm:"size:255" json:"diagnosis"`
	Notes     string `gorm:"size:500" json:"notes"`
	Status    string `gorm:"size:30;default:'New'" json:"status"`

	Medicines []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines"`

	IssuedAt  time.Time `json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrescriptionMedicine struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	PrescriptionID uint `gorm:"index" json:"prescription_id"`

	MedicineName string `gorm:"size:100;not null" json:"medicine_name"`
	Dosage       string `gorm:"size:50" json:"dosage"`
	Frequency    string `gorm:"size:50" json:"frequency"`
	Duration     string `gorm:"size:50" json:"duration"`
	Instructions string `gorm:"size:255" json:"instructions"`
	Quantity     int    `gorm:"default:1" json:"quantity"`

	// Set when the medicine is dispensed from hospital stock.
	PurchaseFromHospital bool  `gorm:"default:false" json:"purchase_from_hospital"`
	InventoryItemID      *uint `json:"inventory_item_id"`
}
