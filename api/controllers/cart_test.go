package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modacart/modacart-backend/api/middleware"
)

type stubCartService struct {
	getFn    func(ctx context.Context, userID string) (map[string]int, error)
	addFn    func(ctx context.Context, userID string, itemID int) error
	removeFn func(ctx context.Context, userID string, itemID int) error
}

func (s stubCartService) Get(ctx context.Context, userID string) (map[string]int, error) {
	return s.getFn(ctx, userID)
}

func (s stubCartService) Add(ctx context.Context, userID string, itemID int) error {
	return s.addFn(ctx, userID, itemID)
}

func (s stubCartService) Remove(ctx context.Context, userID string, itemID int) error {
	return s.removeFn(ctx, userID, itemID)
}

func authedRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestGetCartReturnsBareObject(t *testing.T) {
	svc := stubCartService{
		getFn: func(ctx context.Context, userID string) (map[string]int, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user %q", userID)
			}
			return map[string]int{"0": 0, "5": 2}, nil
		},
	}

	resp := httptest.NewRecorder()
	GetCart(svc, nil).ServeHTTP(resp, authedRequest(http.MethodPost, "/getcart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var cartData map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&cartData); err != nil {
		t.Fatalf("response is not a bare object: %v", err)
	}
	if cartData["5"] != 2 {
		t.Fatalf("unexpected cart %v", cartData)
	}
}

func TestAddToCartRespondsAdded(t *testing.T) {
	var got int
	svc := stubCartService{
		addFn: func(ctx context.Context, userID string, itemID int) error {
			got = itemID
			return nil
		},
	}

	resp := httptest.NewRecorder()
	AddToCart(svc, nil).ServeHTTP(resp, authedRequest(http.MethodPost, "/addtocart", `{"itemId":12}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Body.String() != "Added" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
	if got != 12 {
		t.Fatalf("expected itemId 12, got %d", got)
	}
}

func TestRemoveFromCartRespondsRemoved(t *testing.T) {
	svc := stubCartService{
		removeFn: func(ctx context.Context, userID string, itemID int) error {
			return nil
		},
	}

	resp := httptest.NewRecorder()
	RemoveFromCart(svc, nil).ServeHTTP(resp, authedRequest(http.MethodPost, "/removefromcart", `{"itemId":12}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Body.String() != "Removed" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestCartRejectsNegativeItemID(t *testing.T) {
	svc := stubCartService{
		addFn: func(ctx context.Context, userID string, itemID int) error {
			t.Fatal("add should not be called")
			return nil
		},
	}

	resp := httptest.NewRecorder()
	AddToCart(svc, nil).ServeHTTP(resp, authedRequest(http.MethodPost, "/addtocart", `{"itemId":-1}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRequiresUserInContext(t *testing.T) {
	svc := stubCartService{
		getFn: func(ctx context.Context, userID string) (map[string]int, error) {
			t.Fatal("get should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/getcart", nil)
	resp := httptest.NewRecorder()
	GetCart(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
