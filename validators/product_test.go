package validators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/storelane/storefront-api/models"
)

func validProduct() *models.Product {
	return &models.Product{
		StoreName:  "acme",
		Name:       "Canvas Tote",
		Price:      decimal.NewFromFloat(19.99),
		Weight:     decimal.NewFromFloat(0.4),
		WeightUnit: models.WeightUnitKG,
		Status:     models.ProductStatusActive,
	}
}

func TestValidateProductOK(t *testing.T) {
	assert.Nil(t, ValidateProduct(validProduct()))
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Product)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(p *models.Product) { p.Name = "" },
			field:  "name",
		},
		{
			name:   "negative price",
			mutate: func(p *models.Product) { p.Price = decimal.NewFromFloat(-1) },
			field:  "price",
		},
		{
			name:   "negative weight",
			mutate: func(p *models.Product) { p.Weight = decimal.NewFromFloat(-0.5) },
			field:  "weight",
		},
		{
			name: "negative compare at price",
			mutate: func(p *models.Product) {
				d := decimal.NewFromFloat(-10)
				p.CompareAtPrice = &d
			},
			field: "compare_at_price",
		},
		{
			name:   "invalid status",
			mutate: func(p *models.Product) { p.Status = "published" },
			field:  "status",
		},
		{
			name:   "invalid weight unit",
			mutate: func(p *models.Product) { p.WeightUnit = "oz" },
			field:  "weight_unit",
		},
		{
			name: "negative tracked quantity",
			mutate: func(p *models.Product) {
				p.TrackQuantity = true
				p.Quantity = -3
			},
			field: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)
			errs := ValidateProduct(p)
			assert.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateProductZeroPriceAllowed(t *testing.T) {
	p := validProduct()
	p.Price = decimal.Zero
	p.Weight = decimal.Zero
	assert.Nil(t, ValidateProduct(p))
}
