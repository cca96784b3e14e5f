// Package notify fans delivery events out to the store, driver and customer channels.
// Sends never block or fail the transition that triggered them.
package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/gateway/push"
	"delivery-dispatch/internal/logx"
)

// Channel names used in logs and metrics.
const (
	ChannelStore = "store"
	ChannelPush  = "push"
	ChannelSMS   = "sms"
)

// Config tunes the notifier.
type Config struct {
	Timeout     time.Duration
	TrackingURL string
}

// Notifier runs every send on its own goroutine with a detached, bounded context.
type Notifier struct {
	store    StoreChannel
	push     PushChannel
	sms      SMSChannel
	drivers  DriverLookup
	failures *prometheus.CounterVec
	logger   logx.Logger
	cfg      Config

	wg sync.WaitGroup
}

// Channels groups the optional channels; a nil channel is skipped.
type Channels struct {
	Store StoreChannel
	Push  PushChannel
	SMS   SMSChannel
}

// New creates a Notifier.
func New(ch Channels, drivers DriverLookup, failures *prometheus.CounterVec, logger logx.Logger, cfg Config) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Notifier{
		store:    ch.Store,
		push:     ch.Push,
		sms:      ch.SMS,
		drivers:  drivers,
		failures: failures,
		logger:   logger,
		cfg:      cfg,
	}
}

// Publish schedules the sends for e and returns immediately.
func (n *Notifier) Publish(e domain.DeliveryEvent) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.cfg.Timeout)
		defer cancel()
		n.dispatch(ctx, e)
	}()
}

// Wait blocks until every scheduled send has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) dispatch(ctx context.Context, e domain.DeliveryEvent) {
	var drv *domain.Driver
	if e.DriverID != nil && n.drivers != nil {
		d, err := n.drivers.GetDriver(ctx, *e.DriverID)
		if err != nil {
			n.logger.Warn("driver lookup for notification failed",
				logx.String("event", "notification_driver_lookup"),
				logx.Stringer("delivery_id", e.DeliveryID),
				logx.Err(err),
			)
		}
		if d != nil {
			drv = d
			e.DriverName = d.Name
		}
	}

	var wg sync.WaitGroup
	run := func(channel string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				n.fail(channel, e, err)
			}
		}()
	}

	if n.store != nil {
		run(ChannelStore, func() error { return n.store.NotifyStore(ctx, e) })
	}
	if e.Name == domain.EventAssigned {
		switch {
		case n.push == nil || drv == nil:
		case drv.PushToken == nil || *drv.PushToken == "":
			n.logger.Debug("push skipped: driver has no device token", logx.String("driver_id", drv.ID.String()))
		default:
			token := *drv.PushToken
			run(ChannelPush, func() error {
				_, err := n.push.Send(ctx, token, driverMessage(e))
				return err
			})
		}
		if n.sms != nil && strings.TrimSpace(e.CustomerPhone) != "" {
			run(ChannelSMS, func() error { return n.sms.Send(ctx, e.CustomerPhone, n.trackingText(e)) })
		}
	}
	wg.Wait()
}

func (n *Notifier) fail(channel string, e domain.DeliveryEvent, err error) {
	if n.failures != nil {
		n.failures.WithLabelValues(channel).Inc()
	}
	n.logger.Warn("notification failed",
		logx.String("event", "notification_failed"),
		logx.String("channel", channel),
		logx.String("trigger", string(e.Name)),
		logx.Stringer("delivery_id", e.DeliveryID),
		logx.Stringer("store_id", e.StoreID),
		logx.Err(err),
	)
}

func driverMessage(e domain.DeliveryEvent) push.Message {
	body := "Delivery " + e.DeliveryNumber
	if e.Address != "" {
		body += " to " + e.Address
	}
	return push.Message{
		Title: "New delivery assigned",
		Body:  body,
		Data: map[string]string{
			"type":            string(e.Name),
			"delivery_id":     e.DeliveryID.String(),
			"delivery_number": e.DeliveryNumber,
		},
	}
}

func (n *Notifier) trackingText(e domain.DeliveryEvent) string {
	ref := e.OrderNumber
	if ref == "" {
		ref = e.DeliveryNumber
	}
	text := fmt.Sprintf("Your order %s is on its way", ref)
	if e.DriverName != "" {
		text += " with " + e.DriverName
	}
	if n.cfg.TrackingURL != "" {
		text += ". Track: " + strings.TrimRight(n.cfg.TrackingURL, "/") + "/" + e.DeliveryID.String()
	}
	return text
}
