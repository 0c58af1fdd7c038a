package controllers

import (
	"net/http"

	"github.com/modacart/modacart-backend/api/responses"
	"github.com/modacart/modacart-backend/api/validators"
	"github.com/modacart/modacart-backend/internal/catalog"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
	"github.com/modacart/modacart-backend/pkg/logger"
	"github.com/modacart/modacart-backend/pkg/types"
)

// AddProductRequest is the /addproduct payload.
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Image    string  `json:"image" validate:"required"`
	Category string  `json:"category" validate:"required"`
	NewPrice float64 `json:"new_price" validate:"required,gte=0"`
	OldPrice float64 `json:"old_price" validate:"gte=0"`
}

// RemoveProductRequest is the /removeproduct payload.
type RemoveProductRequest struct {
	ID int64 `json:"id" validate:"required,gte=1"`
}

// AddProduct wires product creation into the HTTP layer.
func AddProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body AddProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), catalog.CreateProductInput{
			Name:     body.Name,
			Image:    body.Image,
			Category: body.Category,
			NewPrice: body.NewPrice,
			OldPrice: body.OldPrice,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, types.ProductCreated{Success: true, Name: product.Name})
	}
}

// RemoveProduct deletes a product by its public id. Unknown ids still
// succeed; deletion is idempotent.
func RemoveProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body RemoveProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), body.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, types.Deleted{Success: true})
	}
}

// AllProducts lists the whole catalog as a bare JSON array.
func AllProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, products)
	}
}

// NewCollections serves the storefront's "new collections" strip.
func NewCollections(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.NewCollection(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, products)
	}
}

// PopularInWomen serves the storefront's "popular in women" strip.
func PopularInWomen(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.PopularInWomen(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, products)
	}
}
