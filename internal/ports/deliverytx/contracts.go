package deliverytx

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
)

// Repository is the set of writes a delivery transition performs inside one transaction.
type Repository interface {
	// GetDelivery returns nil, nil when no delivery matches.
	GetDelivery(ctx context.Context, storeID, id uuid.UUID) (*domain.Delivery, error)
	InsertDelivery(ctx context.Context, d *domain.Delivery) error
	// UpdateStatus applies change only if the row still has change.Expected; false means another writer won.
	UpdateStatus(ctx context.Context, change domain.StatusChange) (bool, error)
	InsertStatusLog(ctx context.Context, log *domain.StatusLog) error
	CountActiveDeliveries(ctx context.Context, driverID, excludeDeliveryID uuid.UUID) (int, error)
	SetDriverOnDelivery(ctx context.Context, driverID uuid.UUID) error
	// ReleaseDriver flips on_delivery back to active and reports whether a row changed.
	ReleaseDriver(ctx context.Context, driverID uuid.UUID) (bool, error)
	MarkOrderDelivered(ctx context.Context, storeID, orderID uuid.UUID) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
