package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/http/handlers"
	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/http/router"
	"delivery-dispatch/internal/logx"
)

const requestTimeout = 10 * time.Second

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		newBaseHandlers,
		handlers.NewFeeHandler,
		handlers.NewDeliveryUsecase,
		handlers.NewDispatchUsecase,
		handlers.NewPoolUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewDriverHandler,
		handlers.NewWebhookHandler,
		handlers.NewPoolHandler,
		newAuthenticator,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newDebugServer,
	)
}

func newAuthenticator(cfg *config.Config, logger logx.Logger) (*middleware.Authenticator, error) {
	return middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger)
}

type routerIn struct {
	dig.In

	Logger      logx.Logger
	Base        *handlers.Handlers
	Fee         *handlers.FeeHandler
	Deliveries  *handlers.DeliveryHandler
	Drivers     *handlers.DriverHandler
	Webhooks    *handlers.WebhookHandler
	Pool        *handlers.PoolHandler
	Auth        *middleware.Authenticator
	RateLimit   *ratelimit.Middleware
	HTTPMetrics *middleware.HTTPMetrics
	Metrics     http.Handler `name:"metrics_handler"`
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Params{
		Logger:      in.Logger,
		Base:        in.Base,
		Fee:         in.Fee,
		Deliveries:  in.Deliveries,
		Drivers:     in.Drivers,
		Webhooks:    in.Webhooks,
		Pool:        in.Pool,
		Auth:        in.Auth,
		RateLimit:   in.RateLimit,
		HTTPMetrics: in.HTTPMetrics,
		Metrics:     in.Metrics,
		Timeout:     requestTimeout,
	})
}

func newBaseHandlers(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
	if pool == nil {
		return handlers.New(logger, nil)
	}
	return handlers.New(logger, pool)
}
