package controllers

import (
	"net/http"

	"github.com/modacart/modacart-backend/api/responses"
)

// Root is the bare liveness endpoint.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteText(w, "modacart api is running")
	}
}
