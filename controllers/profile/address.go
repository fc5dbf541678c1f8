package profileControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/F4licks/Granich-Beauty/models"
)

type AddressInput struct {
	Title       string `json:"title"`
	AddressLine string `json:"address_line"`
}

// POST /profile/addresses/
//
// New addresses are never default, whatever the client sends; promotion goes
// through SetDefaultAddress only.
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if strings.TrimSpace(input.AddressLine) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"address_line": "Address line is required"}})
			return
		}

		address := models.Address{
			UserID:      userID,
			Title:       input.Title,
			AddressLine: input.AddressLine,
			IsDefault:   false,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Address added", "address": address})
	}
}

// POST /profile/addresses/:id/default/
//
// Full replace: clear every default the user has, then set the target if it
// is theirs. The clear commits even when the id belongs to someone else, so
// that case ends with zero defaults; the status field tells the two apart.
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		status := "cleared"
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			set := tx.Model(&models.Address{}).
				Where("id = ? AND user_id = ?", addressID, userID).
				Update("is_default", true)
			if set.Error != nil {
				return set.Error
			}
			if set.RowsAffected > 0 {
				status = "default_set"
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": status})
	}
}

// DELETE /profile/addresses/:id/
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		// Foreign or missing rows fall through silently: the scoped delete
		// never reveals whether another user's address exists.
		if err := db.Where("id = ? AND user_id = ?", addressID, userID).
			Delete(&models.Address{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
