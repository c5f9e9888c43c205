package models

import "time"

type Hospital struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Booking policy
	MinAdvanceMinutes int `gorm:"default:120" json:"min_advance_minutes"`

	// Consultation booking fee in paise
	BookingFeePaise int64 `gorm:"default:0" json:"booking_fee_paise"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
