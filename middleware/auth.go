package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/F4licks/Granich-Beauty/auth"
	"github.com/F4licks/Granich-Beauty/models"
)

func parseToken(c *gin.Context, db *gorm.DB) (string, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return "", errors.New("authorization header is missing")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	sh, _ := claims["sh"].(string)
	if userID == "" || sh == "" {
		return "", errors.New("invalid token claims")
	}

	// The session-hash claim ties the token to the password it was issued
	// under; a password change retires every older token.
	var user models.User
	if err := db.Select("id", "password_hash").First(&user, "id = ?", userID).Error; err != nil {
		return "", errors.New("unknown user")
	}
	if auth.SessionHash(user.PasswordHash) != sh {
		return "", errors.New("session no longer valid")
	}

	return userID, nil
}

// ValidateToken guards endpoints that require a logged-in user.
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseToken(c, db)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalToken sets user_id when a valid token is present and falls through
// silently otherwise, so public pages can show per-user cart state.
func OptionalToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := parseToken(c, db); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
