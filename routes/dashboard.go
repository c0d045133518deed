package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customercontroller "github.com/storelane/storefront-api/controllers/customer"
	ordercontroller "github.com/storelane/storefront-api/controllers/order"
	productcontroller "github.com/storelane/storefront-api/controllers/product"
	"github.com/storelane/storefront-api/middleware"
)

// SetupDashboardRoutes registers the store owner's CRUD endpoints.
// Everything here requires a valid JWT and is scoped to the caller's
// store.
func SetupDashboardRoutes(r *gin.Engine, db *gorm.DB) {
	dashboard := r.Group("/")
	dashboard.Use(middleware.RequireAuth)
	{
		// ──────────────── Products ────────────────
		products := dashboard.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/:id", productcontroller.GetProductByID(db))
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ──────────────── Customers ────────────────
		customers := dashboard.Group("/customers")
		{
			customers.GET("", customercontroller.GetCustomers(db))
			customers.GET("/:id", customercontroller.GetCustomerByID(db))
			customers.POST("", customercontroller.CreateCustomer(db))
			customers.PUT("/:id", customercontroller.UpdateCustomer(db))
			customers.DELETE("/:id", customercontroller.DeleteCustomer(db))
		}

		// ──────────────── Orders ────────────────
		orders := dashboard.Group("/orders")
		{
			orders.GET("", ordercontroller.GetAllOrdersHandler(db))
			orders.GET("/ws", ordercontroller.OrderWebSocketHandler)
			orders.GET("/:orderID", ordercontroller.GetOrderByIDHandler(db))
			orders.POST("", ordercontroller.CreateOrderHandler(db))
			orders.PUT("/:orderID", ordercontroller.UpdateOrderHandler(db))
			orders.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
			orders.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
		}
	}
}
