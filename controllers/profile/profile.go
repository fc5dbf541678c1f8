package profileControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/F4licks/Granich-Beauty/auth"
	cartControllers "github.com/F4licks/Granich-Beauty/controllers/cart"
	"github.com/F4licks/Granich-Beauty/models"
)

type UpdateProfileInput struct {
	Nickname       *string `json:"nickname"`
	DefaultAddress *string `json:"default_address"`
}

type ChangePasswordInput struct {
	OldPassword  string `json:"old_password"`
	NewPassword1 string `json:"new_password1"`
	NewPassword2 string `json:"new_password2"`
}

const minPasswordLength = 8

// GetOrCreateProfile returns the user's profile, creating the default one on
// first access. The insert is ON CONFLICT DO NOTHING so two simultaneous
// first visits cannot race into an error or a duplicate.
func GetOrCreateProfile(db *gorm.DB, userID string) (models.UserProfile, error) {
	stub := models.UserProfile{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&stub).Error; err != nil {
		return stub, err
	}
	var profile models.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

// GET /profile/
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		profile, err := GetOrCreateProfile(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}

		var addresses []models.Address
		db.Where("user_id = ?", userID).Find(&addresses)

		c.JSON(http.StatusOK, gin.H{
			"profile":    profile,
			"addresses":  addresses,
			"cart_count": cartControllers.Count(db, userID),
		})
	}
}

// PUT /profile/
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		profile, err := GetOrCreateProfile(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		// Only the two form fields of the original profile form are
		// writable; everything else in the body is ignored by binding.
		updates := make(map[string]interface{})
		if input.Nickname != nil {
			updates["nickname"] = *input.Nickname
		}
		if input.DefaultAddress != nil {
			updates["default_address"] = *input.DefaultAddress
		}

		if len(updates) > 0 {
			if err := db.Model(&profile).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": profile})
	}
}

// POST /profile/password/
//
// On success the response carries a fresh token: tokens embed a fingerprint
// of the password hash, so the change kills every old token while the caller
// keeps an authenticated session, matching the original's
// update_session_auth_hash behavior.
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ChangePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		errs := make(map[string]string)
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
			errs["old_password"] = "Old password is incorrect"
		}
		if len(input.NewPassword1) < minPasswordLength {
			errs["new_password1"] = "Password must be at least 8 characters"
		}
		if input.NewPassword1 != input.NewPassword2 {
			errs["new_password2"] = "Passwords do not match"
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword1), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		if err := db.Model(&user).UpdateColumn("password_hash", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		token, err := auth.IssueToken(user.ID, string(hash))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed", "token": token})
	}
}
