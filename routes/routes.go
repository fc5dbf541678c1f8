package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog + auth routes (token optional)
	SetupCatalogRoutes(r, db)
	SetupAuthRoutes(r, db)

	// Cart + profile routes (token required)
	SetupUserRoutes(r, db)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db)
}
