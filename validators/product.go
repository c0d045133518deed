package validators

import (
	"github.com/shopspring/decimal"

	"github.com/storelane/storefront-api/models"
)

// ValidateProduct checks a product draft. Returns nil when the draft is
// writable.
func ValidateProduct(p *models.Product) FieldErrors {
	errs := FieldErrors{}
	checkStruct(errs, p)

	if p.Name == "" {
		errs["name"] = "Product name is required"
	}
	if p.Price.IsNegative() {
		errs["price"] = "Price must be greater than or equal to 0"
	}
	if p.CompareAtPrice != nil && p.CompareAtPrice.IsNegative() {
		errs["compare_at_price"] = "Compare-at price must be greater than or equal to 0"
	}
	if p.Cost != nil && p.Cost.IsNegative() {
		errs["cost"] = "Cost must be greater than or equal to 0"
	}
	if p.Weight.IsNegative() {
		errs["weight"] = "Weight must be greater than or equal to 0"
	}
	if p.TrackQuantity && p.Quantity < 0 {
		errs["quantity"] = "Quantity must be greater than or equal to 0"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// nonNegative is shared by the order and product checks.
func nonNegative(errs FieldErrors, field string, d decimal.Decimal) {
	if d.IsNegative() {
		errs[field] = "must be greater than or equal to 0"
	}
}
