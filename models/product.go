package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductStatus string
type WeightUnit string

const (
	ProductStatusDraft    ProductStatus = "draft"    // Not visible in the storefront yet
	ProductStatusActive   ProductStatus = "active"   // Purchasable
	ProductStatusArchived ProductStatus = "archived" // Kept for order history only

	WeightUnitKG WeightUnit = "kg"
	WeightUnitLB WeightUnit = "lb"
)

type Product struct {
	ID             string           `gorm:"size:36;primaryKey" json:"id"`
	StoreName      string           `gorm:"index;not null" json:"store_name"`
	Name           string           `gorm:"not null" json:"name" validate:"required"`
	Description    string           `json:"description"`
	CategoryID     string           `gorm:"size:36" json:"category_id"`
	CategoryName   string           `json:"category_name"`
	Price          decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	CompareAtPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"compare_at_price"`
	Cost           *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	SKU            string           `gorm:"size:100" json:"sku"`
	Barcode        string           `gorm:"size:100" json:"barcode"`
	TrackQuantity  bool             `json:"track_quantity"`
	Quantity       int              `json:"quantity"`
	Weight         decimal.Decimal  `gorm:"type:decimal(10,2)" json:"weight"`
	WeightUnit     WeightUnit       `gorm:"type:VARCHAR(5);default:'kg'" json:"weight_unit" validate:"oneof=kg lb"`
	Status         ProductStatus    `gorm:"type:VARCHAR(20);default:'draft';index" json:"status" validate:"oneof=draft active archived"`
	Images         []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Tags           []ProductTag     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"tags"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductImage is owned by its product; Position drives gallery order.
type ProductImage struct {
	ID        string `gorm:"size:36;primaryKey" json:"id"`
	ProductID string `gorm:"size:36;index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
	Position  int    `json:"position"`
}

type ProductTag struct {
	ID        string `gorm:"size:36;primaryKey" json:"id"`
	ProductID string `gorm:"size:36;index;not null" json:"product_id"`
	Name      string `gorm:"not null" json:"name"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (t *ProductTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Purchasable reports whether the product can appear on a new order.
func (p *Product) Purchasable() bool {
	return p.Status == ProductStatusActive
}

// HasStock reports whether qty units can be sold. Products that do not
// track quantity always have stock.
func (p *Product) HasStock(qty int) bool {
	if !p.TrackQuantity {
		return true
	}
	return p.Quantity >= qty
}
