package models

import (
	"time"
)

// Shipping is one shipment record. ShipmentNumber is the external tracking
// identifier and is deliberately not unique; SenderEmail is unique, which
// means a sender cannot create a second shipment (kept as-is, see DESIGN.md).
type Shipping struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ShipmentNumber   string    `gorm:"not null;size:50;index" json:"shipment_number"`
	SenderEmail      string    `gorm:"unique;not null;size:120" json:"sender_email"`
	ItemType         string    `gorm:"not null;size:100" json:"item_type"`
	Country          string    `gorm:"not null;size:100" json:"country"`
	OriginCity       string    `gorm:"not null;size:100" json:"origin_city"`
	ShippingTime     string    `gorm:"not null;size:50" json:"shipping_time"`
	ShippingDate     string    `gorm:"not null;size:50" json:"shipping_date"`
	SenderName       string    `gorm:"not null;size:120" json:"sender_name"`
	SenderAddress    string    `gorm:"not null;size:255" json:"sender_address"`
	ShippingQuantity int       `gorm:"not null" json:"shipping_quantity"`
	TotalWeight      int       `gorm:"not null" json:"total_weight"`
	Status           string    `gorm:"not null;size:50" json:"status"`
	DeliveryCity     string    `gorm:"not null;size:100" json:"delivery_city"`
	DeliveryDate     string    `gorm:"not null;size:50" json:"delivery_date"`
	RecipientName    string    `gorm:"not null;size:120" json:"recipient_name"`
	RecipientAddress string    `gorm:"not null;size:255" json:"recipient_address"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName overrides the table name used by Shipping to `shippings`
func (Shipping) TableName() string {
	return "shippings"
}
