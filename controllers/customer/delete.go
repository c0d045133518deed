package customercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/middleware"
	"github.com/storelane/storefront-api/models"
)

// DELETE /customers/:id
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := middleware.StoreName(c)
		id := c.Param("id")

		var customer models.Customer
		if err := db.Where("id = ? AND store_name = ?", id, store).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerAddress{}).Error; err != nil {
				return err
			}
			return tx.Delete(&customer).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}
