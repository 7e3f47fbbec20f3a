package entities

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID     uuid.UUID  `json:"account_id"`
	Name          string     `json:"name"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	InStock       bool       `json:"in_stock"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	Status        string     `json:"status"` // "Safe", "Expiring", "Expired"
	AddedManually bool       `json:"added_manually"`

	Timestamp
}
