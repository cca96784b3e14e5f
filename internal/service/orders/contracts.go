//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/delivery"
)

// DeliveryFinder looks up the delivery linked to an order.
type DeliveryFinder interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error)
}

// DeliveryPort is the subset of the delivery state machine the processor drives.
type DeliveryPort interface {
	Transition(
		ctx context.Context,
		storeID, deliveryID uuid.UUID,
		target domain.DeliveryStatus,
		actor domain.Actor,
		f delivery.Fields,
	) (domain.TransitionResult, error)
}
