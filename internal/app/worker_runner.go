package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/notify"
	"delivery-dispatch/internal/transport/kafka"
)

var errNilConsumer = errors.New("kafka consumer is nil: worker container misconfigured")

// WorkerRunner runs the order events consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is cancelled
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Debug    *http.Server         `name:"debug_server" optional:"true"`
	Pool     *pgxpool.Pool        `optional:"true"`
	Notifier *notify.Notifier     `optional:"true"`
	Store    *kafka.StoreNotifier `optional:"true"`
	Redis    *redis.Client        `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(in workerIn) error {
	if in.Consumer == nil {
		return errNilConsumer
	}
	defer closeWorker(in)

	if in.Debug != nil {
		errCh := make(chan error, 1)
		startServer(in.Debug, in.Logger, errCh)
		defer gracefulShutdown(in.Debug, in.Logger, shutdownTimeout)
	}

	in.Logger.Info(serviceName + " worker started")
	return in.Consumer.Run(in.Ctx)
}

func closeWorker(in workerIn) {
	if in.Consumer != nil {
		if err := in.Consumer.Close(); err != nil {
			in.Logger.Error("kafka close error", logx.Err(err))
		}
	}
	closeResources(runIn{
		Logger:   in.Logger,
		Pool:     in.Pool,
		Notifier: in.Notifier,
		Store:    in.Store,
		Redis:    in.Redis,
	})
}
