package entities

import (
	"github.com/google/uuid"
)

type CatalogProduct struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Barcode  string    `gorm:"uniqueIndex" json:"barcode"`
	Name     string    `json:"name"`
	Brand    string    `json:"brand"`
	Category string    `json:"category"`
	// Verified marks products whose name/category were confirmed by more
	// than one household scan.
	Verified  bool `json:"verified"`
	ScanCount int  `json:"scan_count"`

	PriceStats []ProductPriceStat `gorm:"foreignKey:ProductID" json:"price_stats,omitempty"`
	Stores     []ProductStore     `gorm:"foreignKey:ProductID" json:"stores,omitempty"`
	Timestamp
}

// ProductPriceStat aggregates prices reported for a product within one
// region. Amounts are minor currency units (cents).
type ProductPriceStat struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Region        string    `json:"region"`
	AvgPriceCents int64     `json:"avg_price_cents"`
	MinPriceCents int64     `json:"min_price_cents"`
	MaxPriceCents int64     `json:"max_price_cents"`
	PurchaseCount int       `json:"purchase_count"`

	Product *CatalogProduct `gorm:"foreignKey:ProductID" json:"-"`
	Timestamp
}

type ProductStore struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	StoreName string    `json:"store_name"`
	Region    string    `json:"region"`

	Product *CatalogProduct `gorm:"foreignKey:ProductID" json:"-"`
	Timestamp
}
