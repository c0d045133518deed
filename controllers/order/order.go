package ordercontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
	"github.com/storelane/storefront-api/validators"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Status     string           `json:"status"`
	Items      []OrderItemInput `json:"items" binding:"required,min=1"`
	Discount   decimal.Decimal  `json:"discount"`
	Shipping   decimal.Decimal  `json:"shipping"`
	Tax        decimal.Decimal  `json:"tax"`
	Notes      string           `json:"notes"`
	Tags       []string         `json:"tags"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Core Logic --------

// CreateOrder validates products, snapshots name and price into line
// items, recomputes totals, and decrements tracked stock. Everything
// runs in one transaction with the product rows locked.
func CreateOrder(db *gorm.DB, store string, req CreateOrderRequest) (*models.Order, error) {
	status := models.OrderStatusPending
	if req.Status != "" {
		var err error
		if status, err = mapOrderStatus(req.Status); err != nil {
			return nil, err
		}
	}

	order := models.Order{
		StoreName: store,
		Status:    status,
		Discount:  req.Discount,
		Shipping:  req.Shipping,
		Tax:       req.Tax,
		Notes:     req.Notes,
		Tags:      pq.StringArray(req.Tags),
	}

	if req.CustomerID != "" {
		var customer models.Customer
		if err := db.Where("id = ? AND store_name = ?", req.CustomerID, store).First(&customer).Error; err != nil {
			return nil, errors.New("customer not found")
		}
		order.CustomerID = &customer.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND store_name = ?", item.ProductID, store).
				First(&product).Error; err != nil {
				return errors.New("product not found: " + item.ProductID)
			}

			if !product.Purchasable() {
				return errors.New("product is not available for purchase: " + product.Name)
			}
			if !product.HasStock(item.Quantity) {
				return errors.New("insufficient stock for product: " + product.Name)
			}

			// Deduct tracked stock
			if product.TrackQuantity {
				product.Quantity -= item.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}
			}

			// Snapshot name and price at purchase time
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    item.Quantity,
			})
		}

		CalculateTotals(&order)

		if errs := validators.ValidateOrder(&order); errs != nil {
			return errs
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

const unavailableProductName = "Product no longer available"

// maskUnavailableItems rewrites the snapshot name of line items whose
// product is archived, drafted, or deleted, so the dashboard shows them
// as unavailable while the stored snapshot stays intact.
func maskUnavailableItems(db *gorm.DB, store string, orders ...*models.Order) {
	seen := make(map[string]struct{})
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ProductID != "" {
				seen[item.ProductID] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	var activeIDs []string
	db.Model(&models.Product{}).
		Where("store_name = ? AND id IN ? AND status = ?", store, ids, models.ProductStatusActive).
		Pluck("id", &activeIDs)
	active := make(map[string]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	for _, order := range orders {
		for i := range order.Items {
			if _, ok := active[order.Items[i].ProductID]; !ok {
				order.Items[i].ProductName = unavailableProductName
			}
		}
	}
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CreateOrder(db, store, req)
		if err != nil {
			var fieldErrs validators.FieldErrors
			if errors.As(err, &fieldErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			log.Printf("❌ Failed to create order: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		var orders []models.Order
		if err := db.
			Where("store_name = ?", store).
			Preload("Customer").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		refs := make([]*models.Order, len(orders))
		for i := range orders {
			refs[i] = &orders[i]
		}
		maskUnavailableItems(db, store, refs...)

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("orderID")

		var order models.Order
		if err := db.
			Where("id = ? AND store_name = ?", id, store).
			Preload("Customer").
			Preload("Items").
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		maskUnavailableItems(db, store, &order)

		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).
			Where("id = ? AND store_name = ?", id, store).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("orderID")

		var order models.Order
		if err := db.Where("id = ? AND store_name = ?", id, store).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
