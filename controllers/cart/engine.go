package cartControllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/F4licks/Granich-Beauty/models"
)

// ErrUnknownAction is returned by Adjust for actions other than add/remove.
var ErrUnknownAction = errors.New("unknown cart action")

// Count returns the total number of units in the user's cart. An empty cart
// or an empty userID yields 0; store errors also collapse to 0 so page
// rendering never fails on the badge count.
func Count(db *gorm.DB, userID string) int {
	if userID == "" {
		return 0
	}
	var total int64
	db.Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total)
	return int(total)
}

// Total returns the cart's money total: Σ product.price × item.quantity.
func Total(db *gorm.DB, userID string) float64 {
	if userID == "" {
		return 0
	}
	var total float64
	db.Model(&models.CartItem{}).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Select("COALESCE(SUM(products.price * cart_items.quantity), 0)").
		Scan(&total)
	return total
}

// AddOrIncrement puts one unit of the product into the user's cart. The whole
// operation is a single upsert: the composite unique index on
// (user_id, product_id) plus ON CONFLICT .. DO UPDATE makes concurrent adds
// from the same user serialize at the store instead of racing in a
// check-then-act sequence. Returns gorm.ErrRecordNotFound for an unknown
// product.
func AddOrIncrement(db *gorm.DB, userID string, productID uint) (models.CartItem, error) {
	var item models.CartItem

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return item, err
	}

	item = models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		AddedAt:   time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
	}).Create(&item).Error; err != nil {
		return item, err
	}

	// Re-read into a fresh struct: on the conflict path the literal above
	// still holds quantity 1.
	var saved models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&saved).Error; err != nil {
		return saved, err
	}
	saved.Product = product
	return saved, nil
}

// AdjustResult is the payload of the ajax cart endpoint.
type AdjustResult struct {
	Status       string  `json:"status"`
	CartCount    int     `json:"cart_count"`
	ItemCount    int     `json:"item_count"`
	ProductPrice float64 `json:"product_price"`
}

// Adjust moves the user's cart one unit for the given product. "add" behaves
// like AddOrIncrement; "remove" decrements and deletes the row when the last
// unit goes. ItemCount reports the post-operation quantity, 0 when the row
// was deleted.
func Adjust(db *gorm.DB, userID string, productID uint, action string) (AdjustResult, error) {
	var res AdjustResult

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return res, err
	}
	res.ProductPrice = product.Price

	switch action {
	case "add":
		item, err := AddOrIncrement(db, userID, productID)
		if err != nil {
			return res, err
		}
		res.Status = "updated"
		res.ItemCount = item.Quantity

	case "remove":
		// Conditional decrement first; only a quantity-1 row survives to the
		// delete below, so the pair cannot drop a unit twice.
		dec := db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ? AND quantity > 1", userID, productID).
			UpdateColumn("quantity", gorm.Expr("quantity - 1"))
		if dec.Error != nil {
			return res, dec.Error
		}
		if dec.RowsAffected > 0 {
			var item models.CartItem
			if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
				return res, err
			}
			res.Status = "updated"
			res.ItemCount = item.Quantity
		} else {
			del := db.Where("user_id = ? AND product_id = ? AND quantity <= 1", userID, productID).
				Delete(&models.CartItem{})
			if del.Error != nil {
				return res, del.Error
			}
			if del.RowsAffected == 0 {
				return res, gorm.ErrRecordNotFound
			}
			res.Status = "removed"
			res.ItemCount = 0
		}

	default:
		return res, ErrUnknownAction
	}

	res.CartCount = Count(db, userID)
	return res, nil
}

// SetQuantity sets an explicit quantity on a cart item the user owns.
// Non-numeric, empty, or negative input is a deliberate no-op; quantity 0
// deletes the row. Rows belonging to other users are untouchable because
// ownership sits in the WHERE clause.
func SetQuantity(db *gorm.DB, userID string, itemID uint, raw string) error {
	raw = strings.TrimSpace(raw)
	qty, err := strconv.Atoi(raw)
	if raw == "" || err != nil || qty < 0 {
		return nil
	}

	if qty == 0 {
		return db.Where("id = ? AND user_id = ?", itemID, userID).
			Delete(&models.CartItem{}).Error
	}
	return db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		UpdateColumn("quantity", qty).Error
}

// Remove deletes a cart item the user owns. Missing or foreign rows are a
// silent no-op.
func Remove(db *gorm.DB, userID string, itemID uint) error {
	return db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}
