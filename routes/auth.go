package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/F4licks/Granich-Beauty/auth"
)

// SetupAuthRoutes registers account endpoints. Login and register are the
// only mutating routes that work without a session.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register/", auth.Register(db))
	r.POST("/login/", auth.Login(db))
	r.GET("/logout/", auth.Logout())
}
