package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/repository"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/delivery"
	"delivery-dispatch/internal/service/dispatch"
	"delivery-dispatch/internal/service/notify"
	"delivery-dispatch/internal/service/pool"
	"delivery-dispatch/internal/service/settings"
)

type operationTimeout time.Duration

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliveryRepo,
		repository.NewDriverRepo,
		repository.NewSettingsRepo,
		func(repo *repository.SettingsRepo, loc *time.Location, logger logx.Logger) *settings.Provider {
			return settings.NewProvider(repo, loc, logger)
		},
		func(drivers *repository.DriverRepo) *pool.Resolver {
			return pool.NewResolver(drivers)
		},
		func() *assignment.Engine {
			return assignment.NewEngine()
		},
		newDeliveryService,
		newDispatchService,
	)
}

type deliveryIn struct {
	dig.In

	Repo        *repository.DeliveryRepo
	Drivers     *repository.DriverRepo
	Settings    *settings.Provider
	Notifier    *notify.Notifier
	Transitions *prometheus.CounterVec `name:"delivery_transitions_total"`
	Logger      logx.Logger
	Timeout     operationTimeout
}

func newDeliveryService(in deliveryIn) *delivery.Service {
	return delivery.NewService(delivery.Deps{
		Repo:        in.Repo,
		Drivers:     in.Drivers,
		Settings:    in.Settings,
		Notifier:    in.Notifier,
		Transitions: in.Transitions,
		Logger:      in.Logger,
	}, time.Duration(in.Timeout))
}

type dispatchIn struct {
	dig.In

	Deliveries *repository.DeliveryRepo
	Drivers    *repository.DriverRepo
	Settings   *settings.Provider
	Pool       *pool.Resolver
	Locator    *geo.Locator
	Engine     *assignment.Engine
	Committer  *delivery.Service
	Lock       dispatch.DriverLocker
	Decisions  *prometheus.CounterVec `name:"dispatch_decisions_total"`
	Logger     logx.Logger
	Timeout    operationTimeout
}

func newDispatchService(in dispatchIn) *dispatch.Service {
	return dispatch.NewService(dispatch.Deps{
		Deliveries: in.Deliveries,
		Settings:   in.Settings,
		Pool:       in.Pool,
		Locator:    in.Locator,
		Engine:     in.Engine,
		Committer:  in.Committer,
		Lock:       in.Lock,
		Capacity:   in.Drivers,
		Decisions:  in.Decisions,
		Logger:     in.Logger,
	}, time.Duration(in.Timeout))
}
