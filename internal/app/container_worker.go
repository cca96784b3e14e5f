package app

import (
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/repository"
	"delivery-dispatch/internal/service/delivery"
	"delivery-dispatch/internal/service/orders"
	"delivery-dispatch/internal/transport/kafka"
)

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(repo *repository.DeliveryRepo, svc *delivery.Service, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(repo, svc, logger)
		},
		func(p *orders.Processor, logger logx.Logger) kafka.HandleFunc {
			return makeOrdersHandler(p, logger)
		},
		newOrdersConsumer,
		newDebugServer,
	)
}

func newOrdersConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrderEventsTopic, h)
}
