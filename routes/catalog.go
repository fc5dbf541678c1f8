package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/F4licks/Granich-Beauty/controllers/catalog"
	"github.com/F4licks/Granich-Beauty/middleware"
)

// SetupCatalogRoutes registers the public storefront pages. The token is
// optional here: anonymous visitors browse with cart_count 0.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/")
	catalog.Use(middleware.OptionalToken(db))
	{
		catalog.GET("/", catalogControllers.Home(db))
		catalog.GET("/product/:id/", catalogControllers.ProductDetail(db))
	}
}
