package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modacart/modacart-backend/api/controllers"
	"github.com/modacart/modacart-backend/api/middleware"
	"github.com/modacart/modacart-backend/internal/accounts"
	"github.com/modacart/modacart-backend/internal/cart"
	"github.com/modacart/modacart-backend/internal/catalog"
	"github.com/modacart/modacart-backend/internal/media"
	"github.com/modacart/modacart-backend/pkg/config"
	"github.com/modacart/modacart-backend/pkg/logger"
	"github.com/modacart/modacart-backend/pkg/metrics"
)

// NewRouter assembles the HTTP surface. Paths mirror the storefront
// client's expectations, so there is no /api/v1 prefix.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	accountsService accounts.Service,
	cartService cart.Service,
	mediaService media.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/", controllers.Root())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/upload", controllers.Upload(mediaService, cfg.Media, logg))
	r.Method(http.MethodGet, media.PublicPathPrefix+"/*",
		http.StripPrefix(media.PublicPathPrefix+"/", http.FileServer(http.Dir(cfg.Media.Dir))))

	r.Post("/addproduct", controllers.AddProduct(catalogService, logg))
	r.Post("/removeproduct", controllers.RemoveProduct(catalogService, logg))
	r.Get("/allproducts", controllers.AllProducts(catalogService, logg))
	r.Get("/newcollections", controllers.NewCollections(catalogService, logg))
	r.Get("/popularinwomen", controllers.PopularInWomen(catalogService, logg))

	r.Post("/signup", controllers.Signup(accountsService, logg))
	r.Post("/login", controllers.Login(accountsService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Post("/getcart", controllers.GetCart(cartService, logg))
		r.Post("/addtocart", controllers.AddToCart(cartService, logg))
		r.Post("/removefromcart", controllers.RemoveFromCart(cartService, logg))
	})

	return r
}
