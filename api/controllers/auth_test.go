package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modacart/modacart-backend/internal/accounts"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
)

type stubAccountsService struct {
	signupFn func(ctx context.Context, req accounts.SignupRequest) (*accounts.TokenResult, error)
	loginFn  func(ctx context.Context, req accounts.LoginRequest) (*accounts.TokenResult, error)
}

func (s stubAccountsService) Signup(ctx context.Context, req accounts.SignupRequest) (*accounts.TokenResult, error) {
	return s.signupFn(ctx, req)
}

func (s stubAccountsService) Login(ctx context.Context, req accounts.LoginRequest) (*accounts.TokenResult, error) {
	return s.loginFn(ctx, req)
}

func TestSignupReturnsToken(t *testing.T) {
	svc := stubAccountsService{
		signupFn: func(ctx context.Context, req accounts.SignupRequest) (*accounts.TokenResult, error) {
			if req.Email != "ana@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return &accounts.TokenResult{Token: "signed.jwt"}, nil
		},
	}

	body := `{"username":"ana","email":"ana@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	Signup(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.Token != "signed.jwt" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestSignupRejectsMalformedEmail(t *testing.T) {
	svc := stubAccountsService{
		signupFn: func(ctx context.Context, req accounts.SignupRequest) (*accounts.TokenResult, error) {
			t.Fatal("signup should not be called")
			return nil, nil
		},
	}

	body := `{"username":"ana","email":"not-an-email","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	Signup(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	svc := stubAccountsService{
		signupFn: func(ctx context.Context, req accounts.SignupRequest) (*accounts.TokenResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "existing user found with the same email")
		},
	}

	body := `{"username":"ana","email":"ana@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	Signup(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "existing user found with the same email") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := stubAccountsService{
		loginFn: func(ctx context.Context, req accounts.LoginRequest) (*accounts.TokenResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "wrong password")
		},
	}

	body := `{"email":"ana@example.com","password":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	Login(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "wrong password") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestLoginHappyPath(t *testing.T) {
	svc := stubAccountsService{
		loginFn: func(ctx context.Context, req accounts.LoginRequest) (*accounts.TokenResult, error) {
			return &accounts.TokenResult{Token: "signed.jwt"}, nil
		},
	}

	body := `{"email":"ana@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	Login(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"token":"signed.jwt"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
