package models

// Address is a saved shipping address. At most one address per user carries
// IsDefault = true; the profile controller enforces that with a full
// clear-then-set replace, never a toggle.
type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index;not null" json:"user_id"`
	Title       string `json:"title"`
	AddressLine string `gorm:"not null" json:"address_line"`
	IsDefault   bool   `gorm:"default:false" json:"is_default"`
}
