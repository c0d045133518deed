package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storelane/storefront-api/auth"
	"github.com/storelane/storefront-api/middleware"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", middleware.RateLimiter(), auth.SignUp(db))
		authGroup.POST("/login", middleware.RateLimiter(), auth.Login(db))
		authGroup.POST("/logout", auth.Logout())
		authGroup.GET("/me", middleware.RequireAuth, auth.Me(db))
	}
}
