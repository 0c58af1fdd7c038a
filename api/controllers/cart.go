package controllers

import (
	"net/http"

	"github.com/modacart/modacart-backend/api/middleware"
	"github.com/modacart/modacart-backend/api/responses"
	"github.com/modacart/modacart-backend/api/validators"
	"github.com/modacart/modacart-backend/internal/cart"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
	"github.com/modacart/modacart-backend/pkg/logger"
)

// CartItemRequest is the /addtocart and /removefromcart payload. Slots
// above the seeded range are accepted; only negative ids are rejected.
type CartItemRequest struct {
	ItemID int `json:"itemId" validate:"gte=0"`
}

// GetCart returns the caller's cart as a bare slot-to-quantity object.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			err := pkgerrors.New(pkgerrors.CodeUnauthorized, "please authenticate using a valid token")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cartData, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, cartData)
	}
}

// AddToCart bumps one cart slot for the caller.
func AddToCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			err := pkgerrors.New(pkgerrors.CodeUnauthorized, "please authenticate using a valid token")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body CartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Add(r.Context(), userID, body.ItemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteText(w, "Added")
	}
}

// RemoveFromCart decrements one cart slot for the caller. Empty slots
// stay at zero.
func RemoveFromCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			err := pkgerrors.New(pkgerrors.CodeUnauthorized, "please authenticate using a valid token")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body CartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Remove(r.Context(), userID, body.ItemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteText(w, "Removed")
	}
}
