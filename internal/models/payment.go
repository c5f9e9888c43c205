package models

import "time"

const (
	PaymentCreated  = "created"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
	PaymentRefunded = "refunded"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BillID uint `gorm:"index" json:"bill_id"`
	Bill   Bill `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Internal reference sent to the gateway as external_reference.
	Reference string `gorm:"size:64;uniqueIndex" json:"reference"`

	Provider     string `gorm:"size:30;default:'mercadopago'" json:"provider"`
	PreferenceID string `gorm:"size:100" json:"preference_id"`
	CheckoutURL  string `gorm:"size:500" json:"checkout_url"`

	AmountPaise int64  `json:"amount_paise"`
	Status      string `gorm:"size:20;default:'created'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
