package ordercontroller

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/storelane/storefront-api/models"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d("20.00").Equal(LineTotal(d("10.00"), 2)))
	assert.True(t, d("0").Equal(LineTotal(d("9.99"), 0)))
}

func TestCalculateTotals(t *testing.T) {
	// Cart: productA 10.00 × 2, productB 5.00 × 1; discount 2.00,
	// shipping 3.00, tax 1.50 — total must come out at 27.50.
	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: "a", Price: d("10.00"), Quantity: 2},
			{ProductID: "b", Price: d("5.00"), Quantity: 1},
		},
		Discount: d("2.00"),
		Shipping: d("3.00"),
		Tax:      d("1.50"),
	}

	CalculateTotals(order)

	assert.True(t, d("20.00").Equal(order.Items[0].Total))
	assert.True(t, d("5.00").Equal(order.Items[1].Total))
	assert.True(t, d("25.00").Equal(order.Subtotal))
	assert.True(t, d("27.50").Equal(order.Total))
}

func TestCalculateTotalsInvariants(t *testing.T) {
	orders := []*models.Order{
		{},
		{
			Items: []models.OrderItem{
				{ProductID: "a", Price: d("0.00"), Quantity: 5},
			},
		},
		{
			Items: []models.OrderItem{
				{ProductID: "a", Price: d("3.33"), Quantity: 3},
				{ProductID: "b", Price: d("120.50"), Quantity: 2},
				{ProductID: "c", Price: d("0.01"), Quantity: 100},
			},
			Discount: d("10.00"),
			Shipping: d("4.90"),
			Tax:      d("21.25"),
		},
	}

	for _, order := range orders {
		CalculateTotals(order)

		sum := decimal.Zero
		for _, item := range order.Items {
			assert.True(t, item.Total.Equal(LineTotal(item.Price, item.Quantity)))
			sum = sum.Add(item.Total)
		}
		assert.True(t, order.Subtotal.Equal(sum))
		expected := order.Subtotal.Sub(order.Discount).Add(order.Shipping).Add(order.Tax)
		assert.True(t, order.Total.Equal(expected))
	}
}

// Client-supplied totals must be overwritten, never trusted.
func TestCalculateTotalsOverwritesClientValues(t *testing.T) {
	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: "a", Price: d("10.00"), Quantity: 1, Total: d("999.99")},
		},
		Subtotal: d("999.99"),
		Total:    d("0.01"),
	}

	CalculateTotals(order)

	assert.True(t, d("10.00").Equal(order.Items[0].Total))
	assert.True(t, d("10.00").Equal(order.Subtotal))
	assert.True(t, d("10.00").Equal(order.Total))
}

func TestMapOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		status, err := mapOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, string(status))
	}

	status, err := mapOrderStatus("Shipped")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("returned")
	assert.Error(t, err)
}
