package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/F4licks/Granich-Beauty/controllers/cart"
	"github.com/F4licks/Granich-Beauty/models"
)

// AnnotatedProduct is a catalog product carrying the requesting user's cart
// state so the storefront can show "already in cart" without extra requests.
type AnnotatedProduct struct {
	models.Product
	InCartQuantity int  `json:"in_cart_quantity"`
	CartItemID     uint `json:"cart_item_id,omitempty"`
}

func imagesOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// GET /
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var products []models.Product
		if err := db.Preload("Images", imagesOrdered).Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		// One query for the whole cart; annotation is best effort and never
		// fails the page.
		inCart := make(map[uint]models.CartItem)
		if userID != "" {
			var items []models.CartItem
			db.Where("user_id = ?", userID).Find(&items)
			for _, item := range items {
				inCart[item.ProductID] = item
			}
		}

		annotated := make([]AnnotatedProduct, 0, len(products))
		for _, p := range products {
			ap := AnnotatedProduct{Product: p}
			if item, ok := inCart[p.ID]; ok {
				ap.InCartQuantity = item.Quantity
				ap.CartItemID = item.ID
			}
			annotated = append(annotated, ap)
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   annotated,
			"cart_count": cartControllers.Count(db, userID),
		})
	}
}

// GET /product/:id/
func ProductDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.Preload("Images", imagesOrdered).First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":    product,
			"cart_count": cartControllers.Count(db, userID),
		})
	}
}
