package models

import "time"

type KycDocument struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// "aadhaar", "passport", "driving_licence", ...
	Kind string `gorm:"size:30" json:"kind"`

	ObjectKey   string `gorm:"size:255" json:"object_key"`
	ContentType string `gorm:"size:50" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	Status     string     `gorm:"size:20;default:'pending'" json:"status"`
	ReviewedBy *uint      `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	Remark     string     `gorm:"size:255" json:"remark"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
