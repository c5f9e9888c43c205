package models

import "time"

type DoctorProfile struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"uniqueIndex" json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Specialization  string `gorm:"size:100" json:"specialization"`
	Bio             string `gorm:"size:500" json:"bio"`
	Qualifications  string `gorm:"size:255" json:"qualifications"`
	ExperienceYears int    `json:"experience_years"`
	Location        string `gorm:"size:100" json:"location"`

	// Object key of the processed profile photo in the document store.
	PhotoKey string `gorm:"size:255" json:"photo_key"`

	// Consultation fee in paise, billed on completion.
	ConsultationFeePaise int64 `gorm:"default:0" json:"consultation_fee_paise"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
