package storecontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customercontroller "github.com/storelane/storefront-api/controllers/customer"
	ordercontroller "github.com/storelane/storefront-api/controllers/order"
	"github.com/storelane/storefront-api/models"
)

type CheckoutAddress struct {
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type CheckoutCustomer struct {
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Phone     string          `json:"phone" binding:"omitempty,e164"`
	Address   CheckoutAddress `json:"address" binding:"required"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Customer CheckoutCustomer `json:"customer" binding:"required"`
	Items    []CheckoutItem   `json:"items" binding:"required,min=1"`
}

// createOrGetCustomer inserts the buyer as a customer of the store. On
// an email conflict the existing customer is fetched and reused, so a
// returning buyer never produces a duplicate.
func createOrGetCustomer(db *gorm.DB, store string, buyer CheckoutCustomer) (*models.Customer, error) {
	email := strings.ToLower(buyer.Email)
	customer := models.Customer{
		StoreName: store,
		FirstName: buyer.FirstName,
		LastName:  buyer.LastName,
		Email:     email,
		Phone:     buyer.Phone,
	}
	err := db.Create(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !customercontroller.IsDuplicateKey(err) {
		return nil, err
	}

	var existing models.Customer
	if err := db.Where("store_name = ? AND email = ?", store, email).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// createShippingAddress records the checkout address as the customer's
// default shipping address.
func createShippingAddress(db *gorm.DB, store string, customerID string, buyer CheckoutCustomer) error {
	address := models.CustomerAddress{
		CustomerID: customerID,
		StoreName:  store,
		Type:       models.AddressTypeShipping,
		FirstName:  buyer.FirstName,
		LastName:   buyer.LastName,
		Address1:   buyer.Address.Address1,
		Address2:   buyer.Address.Address2,
		City:       buyer.Address.City,
		State:      buyer.Address.State,
		PostalCode: buyer.Address.PostalCode,
		Country:    buyer.Address.Country,
		Phone:      buyer.Phone,
		IsDefault:  true,
	}
	return db.Create(&address).Error
}

// POST /store/:store/checkout
//
// The customer and address are written first and persist even when the
// order itself fails; the order with its items and stock adjustment is
// one transaction.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := c.Param("store")
		if !storeExists(db, store) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// 1️⃣ Resolve or create the customer for (store, email)
		customer, err := createOrGetCustomer(db, store, req.Customer)
		if err != nil {
			log.Printf("❌ Checkout failed to resolve customer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// 2️⃣ Record the shipping address
		if err := createShippingAddress(db, store, customer.ID, req.Customer); err != nil {
			log.Printf("❌ Checkout failed to save address: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// 3️⃣ Order + items + stock adjustment, atomically
		orderReq := ordercontroller.CreateOrderRequest{
			CustomerID: customer.ID,
			Status:     string(models.OrderStatusPending),
		}
		for _, item := range req.Items {
			orderReq.Items = append(orderReq.Items, ordercontroller.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := ordercontroller.CreateOrder(db, store, orderReq)
		if err != nil {
			log.Printf("❌ Checkout failed to create order: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}
