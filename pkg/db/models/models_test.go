package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewCartDataInitializesEverySlot(t *testing.T) {
	cart := NewCartData()
	if len(cart) != CartSlots {
		t.Fatalf("expected %d slots, got %d", CartSlots, len(cart))
	}
	for slot, qty := range cart {
		if qty != 0 {
			t.Fatalf("slot %s initialized to %d, want 0", slot, qty)
		}
	}
	if _, ok := cart["0"]; !ok {
		t.Fatal("expected slot 0 to exist")
	}
	if _, ok := cart["299"]; !ok {
		t.Fatal("expected slot 299 to exist")
	}
}

func TestUserJSONNeverCarriesPassword(t *testing.T) {
	u := User{Name: "kiara", Email: "kiara@example.com", PasswordHash: "$argon2id$..."}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(raw), "argon2id") {
		t.Fatalf("password hash leaked into JSON: %s", raw)
	}
}

func TestProductJSONHidesObjectID(t *testing.T) {
	p := Product{PublicID: 7, Name: "cropped hoodie", Category: "women"}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal product: %v", err)
	}
	if strings.Contains(string(raw), "_id") {
		t.Fatalf("mongo object id leaked into JSON: %s", raw)
	}
	if !strings.Contains(string(raw), `"id":7`) {
		t.Fatalf("public id missing from JSON: %s", raw)
	}
}
