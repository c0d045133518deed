package ordercontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

// UpdateOrderRequest uses pointers so omitted fields stay untouched. A
// present items field replaces the line items wholesale; stock is only
// adjusted at order creation, never on edit.
type UpdateOrderRequest struct {
	CustomerID *string           `json:"customer_id"`
	Status     *string           `json:"status"`
	Items      *[]OrderItemInput `json:"items"`
	Discount   *decimal.Decimal  `json:"discount"`
	Shipping   *decimal.Decimal  `json:"shipping"`
	Tax        *decimal.Decimal  `json:"tax"`
	Notes      *string           `json:"notes"`
	Tags       *[]string         `json:"tags"`
}

// ReplaceItems reports whether the request carries an items field.
func (r *UpdateOrderRequest) ReplaceItems() bool { return r.Items != nil }

// UpdateOrder merges the request over an existing order and recomputes
// totals before persisting.
func UpdateOrder(db *gorm.DB, store, id string, req UpdateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").
		Where("id = ? AND store_name = ?", id, store).
		First(&order).Error; err != nil {
		return nil, err
	}

	if req.Status != nil {
		status, err := mapOrderStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}
	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			order.CustomerID = nil
		} else {
			var customer models.Customer
			if err := db.Where("id = ? AND store_name = ?", *req.CustomerID, store).First(&customer).Error; err != nil {
				return nil, errors.New("customer not found")
			}
			order.CustomerID = &customer.ID
		}
	}
	if req.Discount != nil {
		order.Discount = *req.Discount
	}
	if req.Shipping != nil {
		order.Shipping = *req.Shipping
	}
	if req.Tax != nil {
		order.Tax = *req.Tax
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.Tags != nil {
		order.Tags = pq.StringArray(*req.Tags)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ReplaceItems() {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			order.Items = nil
			for _, item := range *req.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("id = ? AND store_name = ?", item.ProductID, store).
					First(&product).Error; err != nil {
					return errors.New("product not found: " + item.ProductID)
				}
				if !product.Purchasable() {
					return errors.New("product is not available for purchase: " + product.Name)
				}
				order.Items = append(order.Items, models.OrderItem{
					OrderID:     order.ID,
					ProductID:   product.ID,
					ProductName: product.Name,
					Price:       product.Price,
					Quantity:    item.Quantity,
				})
			}
		}

		CalculateTotals(&order)

		if errs := validators.ValidateOrder(&order); errs != nil {
			return errs
		}

		if req.ReplaceItems() && len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}

		return tx.Omit("Items", "Customer").Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// PUT /orders/:orderID
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("orderID")

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := UpdateOrder(db, store, id, req)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			var fieldErrs validators.FieldErrors
			if errors.As(err, &fieldErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			log.Printf("❌ Failed to update order %s: %v", id, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
