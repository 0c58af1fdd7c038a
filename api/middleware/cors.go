package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/modacart/modacart-backend/pkg/config"
)

// CORS returns middleware that applies the configured origin policy. The
// storefront and admin panel run on separate origins, so the token header
// has to be allowed through preflight.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", TokenHeader, "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
