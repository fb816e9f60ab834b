package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mamlesh45/Myntra-Clone/internal/service"
	"github.com/Mamlesh45/Myntra-Clone/pkg/health"
	"github.com/Mamlesh45/Myntra-Clone/pkg/middleware"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	storefrontService *service.StorefrontService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(CORS)

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	handler := NewStorefrontHandler(storefrontService, logger)

	// Catalog is static and sessionless.
	r.Get("/api/v1/catalog", handler.GetCatalog)

	r.Route("/api/v1/storefront", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(SessionIDFromHeader)

		r.Get("/", handler.GetState)

		r.Post("/detail/{identity}", handler.OpenDetail)
		r.Post("/overlay/close", handler.CloseOverlay)

		r.Post("/cart/open", handler.OpenCart)
		r.Post("/cart/items", handler.AddToCart)
		r.Patch("/cart/items/{index}", handler.AdjustQuantity)
		r.Delete("/cart/items/{index}", handler.RemoveCartLine)

		r.Post("/wishlist/open", handler.OpenWishlist)
		r.Post("/wishlist/items", handler.AddToWishlist)
		r.Delete("/wishlist/items/{index}", handler.RemoveWishlistEntry)
		r.Post("/wishlist/items/{index}/move", handler.MoveToCart)

		r.Post("/checkout", handler.Checkout)

		r.Post("/profile/toggle", handler.ToggleProfileMenu)
		r.Post("/profile/select", handler.SelectProfileMenuItem)

		r.Delete("/notification", handler.DismissNotification)
	})

	return r
}
