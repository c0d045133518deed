package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storecontroller "github.com/storelane/storefront-api/controllers/store"
)

// SetupStoreRoutes registers the public storefront endpoints. No auth:
// shoppers browse and check out anonymously.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	store := r.Group("/store/:store")
	{
		store.GET("/products", storecontroller.GetStoreProducts(db))
		store.GET("/products/:id", storecontroller.GetStoreProductByID(db))
		store.POST("/checkout", storecontroller.PlaceOrder(db))
	}
}
