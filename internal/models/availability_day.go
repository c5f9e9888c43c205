package models

import "time"

// One row per weekday with at least one slot. Days without availability
// have no row at all; saving is replace-all per doctor.
type AvailabilityDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index" json:"doctor_id"`

	// Lowercase weekday name ("monday".."sunday").
	Day string `gorm:"size:10" json:"day"`

	// Comma-joined "HH:MM-HH:MM" ranges, insertion order preserved.
	Slots string `gorm:"size:500" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
