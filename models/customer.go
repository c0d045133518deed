package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// Customer email is unique per store, not globally.
type Customer struct {
	ID               string            `gorm:"size:36;primaryKey" json:"id"`
	StoreName        string            `gorm:"not null;uniqueIndex:idx_customers_store_email" json:"store_name"`
	FirstName        string            `gorm:"not null" json:"first_name" validate:"required"`
	LastName         string            `gorm:"not null" json:"last_name" validate:"required"`
	Email            string            `gorm:"not null;uniqueIndex:idx_customers_store_email" json:"email" validate:"required,email"`
	Phone            string            `json:"phone" validate:"omitempty,e164"`
	AcceptsMarketing bool              `json:"accepts_marketing"`
	Tags             pq.StringArray    `gorm:"type:text[]" json:"tags"`
	Addresses        []CustomerAddress `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses" validate:"dive"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type CustomerAddress struct {
	ID         string      `gorm:"size:36;primaryKey" json:"id"`
	CustomerID string      `gorm:"size:36;index;not null" json:"customer_id"`
	StoreName  string      `gorm:"index;not null" json:"store_name"`
	Type       AddressType `gorm:"type:VARCHAR(10);default:'shipping'" json:"type" validate:"oneof=billing shipping"`
	FirstName  string      `gorm:"not null" json:"first_name" validate:"required"`
	LastName   string      `gorm:"not null" json:"last_name" validate:"required"`
	Company    string      `json:"company"`
	Address1   string      `gorm:"not null" json:"address1" validate:"required"`
	Address2   string      `json:"address2"`
	City       string      `gorm:"not null" json:"city" validate:"required"`
	State      string      `gorm:"not null" json:"state" validate:"required"`
	PostalCode string      `gorm:"not null" json:"postal_code" validate:"required"`
	Country    string      `gorm:"not null" json:"country" validate:"required"`
	Phone      string      `json:"phone" validate:"omitempty,e164"`
	// More than one default per customer is allowed; the storefront simply
	// picks the most recent one.
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (a *CustomerAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
