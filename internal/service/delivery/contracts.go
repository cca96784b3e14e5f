//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery_test

package delivery

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/deliverytx"
)

// Repository is the delivery storage the state machine needs.
type Repository interface {
	deliverytx.Runner
	GetDelivery(ctx context.Context, storeID, id uuid.UUID) (*domain.Delivery, error)
	GetDeliveryByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	GetByTrackingID(ctx context.Context, storeID uuid.UUID, trackingID string) (*domain.Delivery, error)
	ListStatusLogs(ctx context.Context, deliveryID uuid.UUID) ([]domain.StatusLog, error)
}

// DriverDirectory answers pool membership questions for assignment.
type DriverDirectory interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	SharedDriverIDs(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error)
}

// SettingsProvider returns store settings (webhook secret).
type SettingsProvider interface {
	Get(ctx context.Context, storeID uuid.UUID) (domain.StoreSettings, error)
}

// Notifier fires side effects after a commit. It must not block.
type Notifier interface {
	Publish(e domain.DeliveryEvent)
}
