package profileControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/F4licks/Granich-Beauty/models"
)

func countDefaults(t *testing.T, dbUserID string, addresses []models.Address) int {
	t.Helper()
	n := 0
	for _, a := range addresses {
		if a.UserID == dbUserID && a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddAddressNeverDefault(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "password123")
	r := profileRouter(db, user.ID)

	// is_default in the payload must be ignored.
	w := do(t, r, http.MethodPost, "/profile/addresses/",
		`{"title": "Home", "address_line": "Arbat 10", "is_default": true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var addr models.Address
	if err := db.Where("user_id = ?", user.ID).First(&addr).Error; err != nil {
		t.Fatalf("address was not created: %v", err)
	}
	if addr.IsDefault {
		t.Fatal("new address must not be default")
	}
}

func TestAddAddressRequiresAddressLine(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "password123")
	r := profileRouter(db, user.ID)

	w := do(t, r, http.MethodPost, "/profile/addresses/", `{"title": "Home", "address_line": "  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var rows int64
	db.Model(&models.Address{}).Count(&rows)
	if rows != 0 {
		t.Fatalf("invalid input created %d address rows", rows)
	}
}

func TestSetDefaultAddressOwned(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "password123")
	r := profileRouter(db, user.ID)

	first := models.Address{UserID: user.ID, Title: "Home", AddressLine: "Arbat 10", IsDefault: true}
	second := models.Address{UserID: user.ID, Title: "Work", AddressLine: "Tverskaya 1"}
	db.Create(&first)
	db.Create(&second)

	w := do(t, r, http.MethodPost, fmt.Sprintf("/profile/addresses/%d/default/", second.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != "default_set" {
		t.Fatalf("expected status default_set, got %q", body.Status)
	}

	var addresses []models.Address
	db.Where("user_id = ?", user.ID).Find(&addresses)
	if got := countDefaults(t, user.ID, addresses); got != 1 {
		t.Fatalf("expected exactly one default, got %d", got)
	}
	for _, a := range addresses {
		if a.IsDefault && a.ID != second.ID {
			t.Fatalf("wrong address is default: %d", a.ID)
		}
	}
}

func TestSetDefaultAddressForeignClearsOnly(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "password123")
	other := createUser(t, db, "password123")
	r := profileRouter(db, owner.ID)

	mine := models.Address{UserID: owner.ID, Title: "Home", AddressLine: "Arbat 10", IsDefault: true}
	theirs := models.Address{UserID: other.ID, Title: "Home", AddressLine: "Nevsky 5", IsDefault: true}
	db.Create(&mine)
	db.Create(&theirs)

	w := do(t, r, http.MethodPost, fmt.Sprintf("/profile/addresses/%d/default/", theirs.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != "cleared" {
		t.Fatalf("expected status cleared, got %q", body.Status)
	}

	// The caller's defaults are gone; the foreign address is untouched.
	var addresses []models.Address
	db.Where("user_id = ?", owner.ID).Find(&addresses)
	if got := countDefaults(t, owner.ID, addresses); got != 0 {
		t.Fatalf("expected zero defaults after foreign target, got %d", got)
	}

	var foreign models.Address
	db.First(&foreign, theirs.ID)
	if !foreign.IsDefault {
		t.Fatal("foreign user's default flag must not change")
	}
}

func TestDeleteAddressForeignIsNoOp(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "password123")
	intruder := createUser(t, db, "password123")
	r := profileRouter(db, intruder.ID)

	addr := models.Address{UserID: owner.ID, Title: "Home", AddressLine: "Arbat 10"}
	db.Create(&addr)

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/profile/addresses/%d/", addr.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rows int64
	db.Model(&models.Address{}).Where("user_id = ?", owner.ID).Count(&rows)
	if rows != 1 {
		t.Fatalf("foreign delete removed the owner's address (rows=%d)", rows)
	}
}

func TestDeleteAddressOwned(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "password123")
	r := profileRouter(db, user.ID)

	addr := models.Address{UserID: user.ID, Title: "Home", AddressLine: "Arbat 10"}
	db.Create(&addr)

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/profile/addresses/%d/", addr.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rows int64
	db.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&rows)
	if rows != 0 {
		t.Fatalf("owned delete left %d rows", rows)
	}
}
