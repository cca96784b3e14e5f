package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/delivery"
)

// Processor processes orders events
type Processor struct {
	finder   DeliveryFinder
	delivery DeliveryPort
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(finder DeliveryFinder, deliverySvc DeliveryPort, logger logx.Logger) *Processor {
	p := &Processor{
		finder:   finder,
		delivery: deliverySvc,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onCanceled)
	return p
}

// Handle processes a single orders.Event. A nil return acknowledges the message.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	d, err := p.finder.GetByOrderID(ctx, e.OrderID)
	if err != nil {
		return fmt.Errorf("find delivery of order %s: %w", e.OrderID, err)
	}
	if d == nil {
		return nil
	}
	if e.StoreID != uuid.Nil && e.StoreID != d.StoreID {
		p.logger.Warn("order event store mismatch",
			logx.String("event", "order_store_mismatch"),
			logx.Stringer("delivery_id", d.ID),
			logx.Stringer("store_id", d.StoreID),
			logx.Stringer("event_store_id", e.StoreID),
		)
		return fmt.Errorf("%w: order %s belongs to another store", apperr.ErrForbidden, e.OrderID)
	}

	notes := e.CancelNote()

	_, err = p.delivery.Transition(ctx, d.StoreID, d.ID, domain.DeliveryCancelled, domain.SystemActor(),
		delivery.Fields{Notes: &notes})
	switch {
	case err == nil:
		p.logger.Info("delivery cancelled by order event",
			logx.String("event", "order_cancelled"),
			logx.Stringer("delivery_id", d.ID),
			logx.Stringer("store_id", d.StoreID),
			logx.Stringer("order_id", e.OrderID),
		)
		return nil
	case apperr.IsInvalidTransition(err), errors.Is(err, apperr.ErrNotFound):
		// already past the point where cancel is allowed, or gone
		p.logger.Info("order cancel ignored",
			logx.String("event", "order_cancel_ignored"),
			logx.Stringer("delivery_id", d.ID),
			logx.Stringer("store_id", d.StoreID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}
