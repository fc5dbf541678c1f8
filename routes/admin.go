package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/F4licks/Granich-Beauty/controllers/product"
	userControllers "github.com/F4licks/Granich-Beauty/controllers/user"
	"github.com/F4licks/Granich-Beauty/middleware"
)

// SetupAdminRoutes registers the catalog-management endpoints used by the
// admin tooling. Products and their images are editable only here.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/products/", productcontroller.CreateProduct(db))
		adminGroup.PUT("/products/:id/", productcontroller.UpdateProduct(db))
		adminGroup.DELETE("/products/:id/", productcontroller.DeleteProduct(db))
		adminGroup.GET("/products/export/", productcontroller.ExportProductsToExcel(db))

		adminGroup.POST("/products/:id/images/", productcontroller.AddProductImage(db))
		adminGroup.DELETE("/images/:image_id/", productcontroller.DeleteProductImage(db))

		adminGroup.GET("/users/", userControllers.GetAllUsers(db))
	}
}
