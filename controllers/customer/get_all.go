package customercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
)

// GET /customers — store-scoped listing with joined addresses.
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)

		search := c.Query("search")

		query := db.Model(&models.Customer{}).
			Where("store_name = ?", store).
			Preload("Addresses")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
				likePattern, likePattern, likePattern)
		}

		var customers []models.Customer
		if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}

		c.JSON(http.StatusOK, customers)
	}
}

// GET /customers/:id
func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("id")

		var customer models.Customer
		if err := db.Preload("Addresses").
			Where("id = ? AND store_name = ?", id, store).
			First(&customer).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}
