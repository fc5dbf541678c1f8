package models

import "time"

type User struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	Username     string      `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Profile      UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
	Addresses    []Address   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CartItems    []CartItem  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}

// UserProfile holds the editable profile bits. DefaultAddress is the legacy
// free-text field; structured addresses live in the Address table.
type UserProfile struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"uniqueIndex;not null" json:"user_id"`
	Nickname       string `json:"nickname"`
	EmailConfirmed bool   `gorm:"default:false" json:"email_confirmed"`
	DefaultAddress string `json:"default_address"`
}
