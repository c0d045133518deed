package validators

import (
	"github.com/storelane/storefront-api/models"
)

// ValidateCustomer checks a customer draft including its addresses.
// Returns nil when the draft is writable.
func ValidateCustomer(c *models.Customer) FieldErrors {
	errs := FieldErrors{}
	checkStruct(errs, c)

	if len(errs) == 0 {
		return nil
	}
	return errs
}
