package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"delivery-dispatch/internal/http/handlers"
	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/logx"
)

const defaultTimeout = 5 * time.Second

// Params are the handlers and middleware the router mounts.
type Params struct {
	Logger     logx.Logger
	Base       *handlers.Handlers
	Fee        *handlers.FeeHandler
	Deliveries *handlers.DeliveryHandler
	Drivers    *handlers.DriverHandler
	Webhooks   *handlers.WebhookHandler
	Pool       *handlers.PoolHandler

	Auth        *middleware.Authenticator
	RateLimit   *ratelimit.Middleware
	HTTPMetrics *middleware.HTTPMetrics
	Metrics     http.Handler
	Timeout     time.Duration
}

// New constructs the chi router with base middleware and routes.
func New(p Params) http.Handler {
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	if p.Logger == nil {
		p.Logger = logx.Nop()
	}
	if p.HTTPMetrics == nil {
		p.HTTPMetrics = middleware.NewHTTPMetrics()
	}
	h := p.Base
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(p.Logger, p.HTTPMetrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(p.Timeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics)
	}
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		if p.RateLimit != nil {
			r.Use(p.RateLimit.Handler())
		}

		r.Get("/delivery-fee", p.Fee.Quote)
		// secret checked per store by the delivery service
		r.Post("/webhooks/provider/{storeID}", p.Webhooks.Provider)

		r.Group(func(r chi.Router) {
			r.Use(p.Auth.Middleware())

			r.Route("/stores/{storeID}", func(r chi.Router) {
				r.Use(middleware.RequireRole(middleware.RoleStaff))
				r.Use(middleware.RequireStore("storeID"))

				r.Post("/deliveries", p.Deliveries.Create)
				r.Get("/deliveries/{id}", p.Deliveries.Get)
				r.Post("/deliveries/{id}/dispatch", p.Deliveries.Dispatch)
				r.Patch("/deliveries/{id}/status", p.Deliveries.UpdateStatus)
				r.Get("/drivers/pool", p.Pool.List)
			})

			r.Route("/driver", func(r chi.Router) {
				r.Use(middleware.RequireRole(middleware.RoleDriver))
				r.Patch("/deliveries/{id}/status", p.Drivers.UpdateStatus)
			})
		})
	})

	return r
}
