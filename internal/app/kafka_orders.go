package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/orders"
	"delivery-dispatch/internal/transport/kafka"
)

type orderEventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

var errNoOrderID = errors.New("order event without order id")

// makeOrdersHandler adapts the processor to the consumer. Failures a redelivery cannot fix
// are marked permanent so the offset moves on.
func makeOrdersHandler(p orderEventHandler, logger logx.Logger) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if event.OrderID == uuid.Nil {
			return kafka.Permanent(errNoOrderID)
		}
		err := p.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrForbidden) {
			logger.Warn("order event rejected",
				logx.String("event", "order_event_rejected"),
				logx.Stringer("order_id", event.OrderID),
				logx.String("status", event.Status),
				logx.Err(err),
			)
			return kafka.Permanent(err)
		}
		return err
	}
}
