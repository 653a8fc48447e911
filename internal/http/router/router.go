package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-checkout-delivery/internal/http/handlers"
	"service-checkout-delivery/internal/http/middleware"
	"service-checkout-delivery/internal/http/middleware/ratelimit"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// A nil limiter disables rate limiting.
func New(
	h *handlers.Handlers,
	delivery *handlers.DeliveryHandler,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(h.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	// {id} is already captured here, so the limiter can key by checkout
	r.Route("/checkouts/{id}", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Get("/delivery-options", delivery.ListDeliveryOptions)
		r.Get("/collection-points", delivery.ListCollectionPoints)
		r.Put("/delivery-method", delivery.AssignDeliveryMethod)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
