package validators

import (
	"fmt"

	"github.com/storelane/storefront-api/models"
)

// ValidateOrder checks an order draft. Monetary fields must be
// non-negative and every line item needs a product and a quantity of at
// least one. Returns nil when the draft is writable.
func ValidateOrder(o *models.Order) FieldErrors {
	errs := FieldErrors{}
	checkStruct(errs, o)

	nonNegative(errs, "subtotal", o.Subtotal)
	nonNegative(errs, "discount", o.Discount)
	nonNegative(errs, "shipping", o.Shipping)
	nonNegative(errs, "tax", o.Tax)
	nonNegative(errs, "total", o.Total)
	for i, item := range o.Items {
		if item.Price.IsNegative() {
			errs[fmt.Sprintf("items[%d].price", i)] = "must be greater than or equal to 0"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
