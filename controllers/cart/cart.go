package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/F4licks/Granich-Beauty/models"
)

type AjaxUpdateInput struct {
	ProductID uint   `json:"product_id" form:"product_id"`
	Action    string `json:"action" form:"action"`
}

func cartDocument(db *gorm.DB, userID string) gin.H {
	var items []models.CartItem
	db.Preload("Product").Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("user_id = ?", userID).Order("added_at ASC").Find(&items)

	var addresses []models.Address
	db.Where("user_id = ?", userID).Find(&addresses)

	return gin.H{
		"cart_items": items,
		"addresses":  addresses,
		"total":      Total(db, userID),
		"cart_count": Count(db, userID),
	}
}

// GET /cart/
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		c.JSON(http.StatusOK, cartDocument(db, userID))
	}
}

// AjaxUpdateRequiresPost answers every non-POST verb on the ajax endpoint
// with a JSON 400 instead of the router's plain-text 404.
func AjaxUpdateRequiresPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "POST required"})
	}
}

// POST /cart/ajax-update/
func AjaxUpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AjaxUpdateInput
		if err := c.ShouldBind(&input); err != nil || input.ProductID == 0 || input.Action == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and action are required"})
			return
		}

		result, err := Adjust(db, userID, input.ProductID, input.Action)
		if err != nil {
			switch err {
			case ErrUnknownAction:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
			case gorm.ErrRecordNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Product or cart item not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// POST /cart/items/:item_id/
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		// Bad quantity input is a no-op inside SetQuantity, mirroring the
		// original form handling: the cart re-renders unchanged.
		var input struct {
			Quantity string `json:"quantity" form:"quantity"`
		}
		_ = c.ShouldBind(&input)

		if err := SetQuantity(db, userID, uint(itemID), input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cartDocument(db, userID))
	}
}

// DELETE /cart/items/:item_id/
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		if err := Remove(db, userID, uint(itemID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		c.JSON(http.StatusOK, cartDocument(db, userID))
	}
}
