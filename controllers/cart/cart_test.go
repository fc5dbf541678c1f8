package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/F4licks/Granich-Beauty/models"
)

func cartRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/cart/", ViewCart(db))
	r.POST("/cart/ajax-update/", AjaxUpdateCart(db))
	r.POST("/cart/items/:item_id/", UpdateCartItem(db))
	r.DELETE("/cart/items/:item_id/", RemoveCartItem(db))
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		r.Handle(method, "/cart/ajax-update/", AjaxUpdateRequiresPost())
	}
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAjaxUpdateCartAddAndRemove(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db)
	product := createProduct(t, db, "Day cream", 15.00)
	r := cartRouter(db, user.ID)

	w := postJSON(t, r, "/cart/ajax-update/", `{"product_id": 1, "action": "add"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var result AdjustResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Status != "updated" || result.ItemCount != 1 || result.CartCount != 1 {
		t.Fatalf("unexpected add response: %+v", result)
	}
	if result.ProductPrice != product.Price {
		t.Fatalf("expected product_price %v, got %v", product.Price, result.ProductPrice)
	}

	w = postJSON(t, r, "/cart/ajax-update/", `{"product_id": 1, "action": "remove"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Status != "removed" || result.ItemCount != 0 || result.CartCount != 0 {
		t.Fatalf("unexpected remove response: %+v", result)
	}
}

func TestAjaxUpdateCartRejectsBadInput(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db)
	product := createProduct(t, db, "Night cream", 18.00)
	r := cartRouter(db, user.ID)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing action", `{"product_id": 1}`, http.StatusBadRequest},
		{"missing product", `{"action": "add"}`, http.StatusBadRequest},
		{"unknown action", `{"product_id": 1, "action": "explode"}`, http.StatusBadRequest},
		{"unknown product", `{"product_id": 999, "action": "add"}`, http.StatusNotFound},
		{"remove without item", `{"product_id": 1, "action": "remove"}`, http.StatusNotFound},
	}
	_ = product

	for _, tc := range cases {
		w := postJSON(t, r, "/cart/ajax-update/", tc.body)
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d (%s)", tc.name, tc.want, w.Code, w.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: response is not JSON: %v", tc.name, err)
		}
		if _, ok := body["error"]; !ok {
			t.Fatalf("%s: expected error body, got %s", tc.name, w.Body.String())
		}
	}
}

func TestAjaxUpdateCartRejectsNonPost(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db)
	r := cartRouter(db, user.ID)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		req := httptest.NewRequest(method, "/cart/ajax-update/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", method, w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: response is not JSON: %v (%s)", method, err, w.Body.String())
		}
		if _, ok := body["error"]; !ok {
			t.Fatalf("%s: expected error body, got %s", method, w.Body.String())
		}
	}
}

func TestUpdateCartItemNonNumericQuantityKeepsState(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db)
	product := createProduct(t, db, "Gel", 9.00)
	r := cartRouter(db, user.ID)

	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 5, AddedAt: time.Now()}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed cart item: %v", err)
	}

	w := postJSON(t, r, "/cart/items/1/", `{"quantity": "abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var got models.CartItem
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if got.Quantity != 5 {
		t.Fatalf("non-numeric quantity mutated item to %d", got.Quantity)
	}
}

func TestViewCartDocument(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db)
	product := createProduct(t, db, "Tonic", 4.00)
	r := cartRouter(db, user.ID)

	db.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2, AddedAt: time.Now()})
	db.Create(&models.Address{UserID: user.ID, Title: "Home", AddressLine: "Arbat 1"})

	req := httptest.NewRequest(http.MethodGet, "/cart/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		CartItems []models.CartItem `json:"cart_items"`
		Addresses []models.Address  `json:"addresses"`
		Total     float64           `json:"total"`
		CartCount int               `json:"cart_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.CartItems) != 1 || body.CartItems[0].Product.Name != "Tonic" {
		t.Fatalf("unexpected cart items: %+v", body.CartItems)
	}
	if len(body.Addresses) != 1 {
		t.Fatalf("expected 1 address, got %d", len(body.Addresses))
	}
	if body.Total != 8.00 || body.CartCount != 2 {
		t.Fatalf("unexpected totals: total=%v count=%d", body.Total, body.CartCount)
	}
}
