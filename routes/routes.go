package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Auth, Dashboard,
// and public Store route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public auth routes (rate-limited, no auth middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Dashboard routes (JWT-protected, store-scoped)
	SetupDashboardRoutes(r, db)

	// 3️⃣ Public storefront routes
	SetupStoreRoutes(r, db)
}
