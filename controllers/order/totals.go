package ordercontroller

import (
	"github.com/shopspring/decimal"

	"github.com/storelane/storefront-api/models"
)

// LineTotal is price × quantity for a single line item.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotals recomputes every derived monetary field on the order
// from its line items:
//
//	item.total = item.price × item.quantity
//	subtotal   = Σ item.total
//	total      = subtotal − discount + shipping + tax
//
// Always called right before persisting, so client-supplied totals are
// never trusted.
func CalculateTotals(order *models.Order) {
	subtotal := decimal.Zero
	for i := range order.Items {
		order.Items[i].Total = LineTotal(order.Items[i].Price, order.Items[i].Quantity)
		subtotal = subtotal.Add(order.Items[i].Total)
	}
	order.Subtotal = subtotal
	order.Total = subtotal.Sub(order.Discount).Add(order.Shipping).Add(order.Tax)
}
