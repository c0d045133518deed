package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

// Order may exist without a customer record (CustomerID empty).
// Invariant: Total = Subtotal - Discount + Shipping + Tax.
type Order struct {
	ID         string          `gorm:"size:36;primaryKey" json:"id"`
	StoreName  string          `gorm:"index;not null" json:"store_name"`
	CustomerID *string         `gorm:"size:36;index" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status     OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status" validate:"oneof=pending processing shipped delivered cancelled"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items" validate:"dive"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	Shipping   decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping"`
	Tax        decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Notes      string          `json:"notes"`
	Tags       pq.StringArray  `gorm:"type:text[]" json:"tags"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderItem snapshots the product name and price at purchase time so the
// order stays readable after the product is edited or archived.
type OrderItem struct {
	ID          string          `gorm:"size:36;primaryKey" json:"id"`
	OrderID     string          `gorm:"size:36;index;not null" json:"order_id"`
	ProductID   string          `gorm:"size:36;index" json:"product_id" validate:"required"`
	ProductName string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity" validate:"min=1"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
