package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/gateway/push"
	"delivery-dispatch/internal/gateway/sms"
	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/lock"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/repository"
	"delivery-dispatch/internal/service/dispatch"
	"delivery-dispatch/internal/service/notify"
	"delivery-dispatch/internal/transport/kafka"
)

// Optional integrations are provided as nil interfaces when they are not configured.
func registerInfra(container *dig.Container) error {
	return provideAll(container,
		newLocation,
		newRedisClient,
		newGeocoder,
		func(g geo.Geocoder, logger logx.Logger) *geo.Locator {
			return geo.NewLocator(g, logger)
		},
		newDriverLocker,
		newSMSChannel,
		newPushChannel,
		newStoreNotifier,
		newStoreChannel,
		newNotifier,
	)
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Dispatch.DefaultTimeZone)
	if err != nil {
		return nil, fmt.Errorf("load default time zone: %w", err)
	}
	return loc, nil
}

// newRedisClient does not dial; the first command connects.
func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func newGeocoder(cfg *config.Config, rdb *redis.Client, logger logx.Logger) (geo.Geocoder, error) {
	if cfg.Maps.APIKey == "" {
		logger.Info("geocoding disabled", logx.String("reason", "no maps api key"))
		return nil, nil
	}
	g, err := geo.NewGoogleGeocoder(cfg.Maps.APIKey, cfg.Maps.Region)
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	return geo.NewCachedGeocoder(g, rdb, cfg.Redis.GeocodeTTL, logger), nil
}

func newDriverLocker(cfg *config.Config, rdb *redis.Client, logger logx.Logger) dispatch.DriverLocker {
	if !cfg.Redis.DriverLock {
		return nil
	}
	return lock.NewDriverLock(rdb, cfg.Redis.LockTTL, logger)
}

type smsIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func newSMSChannel(in smsIn) notify.SMSChannel {
	c := in.Cfg.SMS
	client := sms.NewClient(c.BaseURL, c.APIKey, c.Sender, c.Timeout)
	if client == nil {
		return nil
	}
	return sms.NewRetryingSender(client, in.Logger, in.Retries, sms.RetryConfig{
		MaxAttempts: c.MaxAttempts,
		BaseDelay:   c.BaseDelay,
		MaxDelay:    c.MaxDelay,
	})
}

func newPushChannel(ctx context.Context, cfg *config.Config) (notify.PushChannel, error) {
	if !cfg.Firebase.Enabled() {
		return nil, nil
	}
	s, err := push.NewSender(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("push: %w", err)
	}
	return s, nil
}

func newStoreNotifier(cfg *config.Config) (*kafka.StoreNotifier, error) {
	return kafka.NewStoreNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
}

func newStoreChannel(n *kafka.StoreNotifier) notify.StoreChannel {
	if n == nil {
		return nil
	}
	return n
}

type notifierIn struct {
	dig.In

	Cfg      *config.Config
	Logger   logx.Logger
	Store    notify.StoreChannel
	Push     notify.PushChannel
	SMS      notify.SMSChannel
	Drivers  *repository.DriverRepo
	Failures *prometheus.CounterVec `name:"notification_failures_total"`
}

func newNotifier(in notifierIn) *notify.Notifier {
	return notify.New(
		notify.Channels{Store: in.Store, Push: in.Push, SMS: in.SMS},
		in.Drivers,
		in.Failures,
		in.Logger,
		notify.Config{
			Timeout:     in.Cfg.Dispatch.NotifyTimeout,
			TrackingURL: in.Cfg.SMS.TrackingURL,
		},
	)
}
