package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/F4licks/Granich-Beauty/controllers/cart"
	profileControllers "github.com/F4licks/Granich-Beauty/controllers/profile"
	"github.com/F4licks/Granich-Beauty/middleware"
)

// SetupUserRoutes registers the cart and profile endpoints. All of them
// require a valid token.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(db))
	{
		cartGroup.GET("/", cartControllers.ViewCart(db))
		cartGroup.POST("/ajax-update/", cartControllers.AjaxUpdateCart(db))
		cartGroup.POST("/items/:item_id/", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/items/:item_id/", cartControllers.RemoveCartItem(db))
	}

	// The ajax endpoint answers other verbs with a JSON 400, auth or not.
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		r.Handle(method, "/cart/ajax-update/", cartControllers.AjaxUpdateRequiresPost())
	}

	// ──────────────── Profile & Addresses ────────────────
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.ValidateToken(db))
	{
		profileGroup.GET("/", profileControllers.GetProfile(db))
		profileGroup.PUT("/", profileControllers.UpdateProfile(db))
		profileGroup.POST("/password/", profileControllers.ChangePassword(db))

		profileGroup.POST("/addresses/", profileControllers.AddAddress(db))
		profileGroup.POST("/addresses/:id/default/", profileControllers.SetDefaultAddress(db))
		profileGroup.DELETE("/addresses/:id/", profileControllers.DeleteAddress(db))
	}
}
