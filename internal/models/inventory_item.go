package models

import "time"

type InventoryItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	HospitalID uint     `gorm:"index" json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	MedicineName string `gorm:"size:100;not null" json:"medicine_name"`
	GenericName  string `gorm:"size:100" json:"generic_name"`
	Manufacturer string `gorm:"size:100" json:"manufacturer"`

	StockQuantity     int `gorm:"default:0" json:"stock_quantity"`
	LowStockThreshold int `gorm:"default:10" json:"low_stock_threshold"`

	UnitPricePaise int64      `json:"unit_price_paise"`
	ExpiryDate     *time.Time `json:"expiry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
