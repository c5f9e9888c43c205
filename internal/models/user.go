package models

import "time"

const (
	RolePatient    = "patient"
	RoleDoctor     = "doctor"
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
)

const (
	KycPending  = "pending"
	KycVerified = "verified"
	KycRejected = "rejected"
)

type User struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	HospitalID uint     `json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'patient'" json:"role"`

	KycStatus string `gorm:"size:20;default:'pending'" json:"kyc_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
