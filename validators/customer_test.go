package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storelane/storefront-api/models"
)

func validCustomer() *models.Customer {
	return &models.Customer{
		StoreName: "acme",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+15551234567",
	}
}

func validAddress() models.CustomerAddress {
	return models.CustomerAddress{
		Type:       models.AddressTypeShipping,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Address1:   "1 Analytical Way",
		City:       "London",
		State:      "LDN",
		PostalCode: "E1 6AN",
		Country:    "GB",
	}
}

func TestValidateCustomerOK(t *testing.T) {
	c := validCustomer()
	c.Addresses = []models.CustomerAddress{validAddress()}
	assert.Nil(t, ValidateCustomer(c))
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Customer)
		field  string
	}{
		{
			name:   "missing first name",
			mutate: func(c *models.Customer) { c.FirstName = "" },
			field:  "first_name",
		},
		{
			name:   "missing last name",
			mutate: func(c *models.Customer) { c.LastName = "" },
			field:  "last_name",
		},
		{
			name:   "missing email",
			mutate: func(c *models.Customer) { c.Email = "" },
			field:  "email",
		},
		{
			name:   "malformed email",
			mutate: func(c *models.Customer) { c.Email = "not-an-email" },
			field:  "email",
		},
		{
			name:   "malformed phone",
			mutate: func(c *models.Customer) { c.Phone = "call me" },
			field:  "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(c)
			errs := ValidateCustomer(c)
			assert.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateCustomerPhoneOptional(t *testing.T) {
	c := validCustomer()
	c.Phone = ""
	assert.Nil(t, ValidateCustomer(c))
}

func TestValidateCustomerAddressFields(t *testing.T) {
	c := validCustomer()
	addr := validAddress()
	addr.City = ""
	addr.Type = "office"
	c.Addresses = []models.CustomerAddress{addr}

	errs := ValidateCustomer(c)
	assert.NotNil(t, errs)
	assert.Contains(t, errs, "addresses[0].city")
	assert.Contains(t, errs, "addresses[0].type")
}
