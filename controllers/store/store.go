package storecontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/cache"
	"github.com/storelane/storefront-api/models"
)

const productListTTL = 5 * time.Minute

// storeExists checks the store name in the URL against registered
// dashboard accounts.
func storeExists(db *gorm.DB, store string) bool {
	var count int64
	db.Model(&models.User{}).Where("store_name = ?", store).Count(&count)
	return count > 0
}

// GET /store/:store/products — public listing of active products,
// served from Redis when warm.
func GetStoreProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := c.Param("store")
		if !storeExists(db, store) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		cacheKey := "store_products:" + store
		var products []models.Product
		if cache.GetJSON(c.Request.Context(), cacheKey, &products) {
			c.JSON(http.StatusOK, products)
			return
		}

		if err := db.
			Where("store_name = ? AND status = ?", store, models.ProductStatusActive).
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Preload("Tags").
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		cache.SetJSON(c.Request.Context(), cacheKey, products, productListTTL)
		c.JSON(http.StatusOK, products)
	}
}

// GET /store/:store/products/:id
func GetStoreProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := c.Param("store")

		var product models.Product
		if err := db.
			Where("id = ? AND store_name = ? AND status = ?", c.Param("id"), store, models.ProductStatusActive).
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Preload("Tags").
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
