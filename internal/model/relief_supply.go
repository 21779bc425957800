package model

import "time"

// Relief supply lifecycle statuses.
const (
	SupplyPending   = "pending"
	SupplyConfirmed = "confirmed"
	SupplyShipped   = "shipped"
	SupplyDelivered = "delivered"
	SupplyCancelled = "cancelled"
)

// ReliefSupply is a donor's pledge or fulfillment against a request. The item
// fields are a snapshot of the originating request's representative line item
// taken at creation time; later edits to the request do not alter them.
type ReliefSupply struct {
	ID                string     `gorm:"primaryKey;size:64" json:"supply_id"`
	RequestID         *string    `gorm:"size:64;index" json:"request_id"` // nil for unsolicited supplies
	ShelterID         string     `gorm:"size:64;index;not null" json:"shelter_id"`
	SupplierID        string     `gorm:"size:64;index;not null" json:"supplier_id"`
	SupplierName      string     `gorm:"size:128" json:"supplier_name"`
	SupplierPhone     string     `gorm:"size:32" json:"supplier_phone"`
	SupplierEmail     string     `gorm:"size:256" json:"supplier_email"`
	SupplierMessage   string     `gorm:"size:1024" json:"supplier_message"`
	ItemName          string     `gorm:"size:256;not null" json:"item_name"`
	Category          string     `gorm:"size:64;not null" json:"category"`
	Subcategory       string     `gorm:"size:64;not null" json:"subcategory"`
	RequestedQuantity int        `gorm:"not null" json:"requested_quantity"`
	SuppliedQuantity  int        `gorm:"not null" json:"supplied_quantity"`
	Unit              string     `gorm:"size:32;not null" json:"unit"`
	Priority          string     `gorm:"size:16;not null" json:"priority"`
	Status            string     `gorm:"size:16;index;not null" json:"status"`
	CourierCompany    string     `gorm:"size:128" json:"courier_company"`
	TrackingNumber    string     `gorm:"size:128" json:"tracking_number"`
	ShippedAt         *time.Time `json:"shipped_at"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`
}
