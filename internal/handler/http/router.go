package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kev3770/aura-cart-service/internal/catalog"
	"github.com/Kev3770/aura-cart-service/internal/service"
	"github.com/Kev3770/aura-cart-service/pkg/health"
	"github.com/Kev3770/aura-cart-service/pkg/middleware"
)

// NewRouter creates a chi router with all cart service routes registered.
func NewRouter(
	cartService *service.CartService,
	catalogClient *catalog.Client,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("cart"))
	r.Use(middleware.Tracing("cart"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Cart API endpoints
	cartHandler := NewCartHandler(cartService, catalogClient, logger)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(UserIDFromHeader)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Get("/totals", cartHandler.GetTotals)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productID}/{size}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{productID}/{size}", cartHandler.RemoveItem)
		r.Post("/items/{productID}/{size}/increment", cartHandler.IncrementItem)
		r.Post("/items/{productID}/{size}/decrement", cartHandler.DecrementItem)
	})

	return r
}
