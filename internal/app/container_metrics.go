package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal    prometheus.Counter     `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal       prometheus.Counter     `name:"gateway_retries_total"`
	DeliveryTransitionsTotal  *prometheus.CounterVec `name:"delivery_transitions_total"`
	DispatchDecisionsTotal    *prometheus.CounterVec `name:"dispatch_decisions_total"`
	NotificationFailuresTotal *prometheus.CounterVec `name:"notification_failures_total"`
	HTTP                      *middleware.HTTPMetrics
}

// provideMetrics registers the service collectors on the default registerer.
// A collector that is already registered is reused.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.GatewayRetriesTotal, err = register("gateway_retries_total", metrics.NewGatewayRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DeliveryTransitionsTotal, err = register("delivery_transitions_total", metrics.NewDeliveryTransitionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DispatchDecisionsTotal, err = register("dispatch_decisions_total", metrics.NewDispatchDecisionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.NotificationFailuresTotal, err = register("notification_failures_total", metrics.NewNotificationFailuresTotal()); err != nil {
		return metricsOut{}, err
	}

	out.HTTP = middleware.NewHTTPMetrics()
	for _, c := range out.HTTP.Collectors() {
		if err := prometheus.DefaultRegisterer.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				// a second container in one process; its request metrics stay unexported
				continue
			}
			return metricsOut{}, fmt.Errorf("register http metrics: %w", err)
		}
	}
	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

type metricsHandlerOut struct {
	dig.Out

	Handler http.Handler `name:"metrics_handler"`
}

func provideMetricsHandler() metricsHandlerOut {
	return metricsHandlerOut{Handler: promhttp.Handler()}
}
