//go:generate mockgen -source=contracts.go -destination=notify_mocks_test.go -package=notify_test

package notify

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/gateway/push"
)

// StoreChannel delivers events to the store dashboard.
type StoreChannel interface {
	NotifyStore(ctx context.Context, e domain.DeliveryEvent) error
}

// PushChannel delivers a notification to a driver device.
type PushChannel interface {
	Send(ctx context.Context, token string, m push.Message) (string, error)
}

// SMSChannel delivers a text message to a customer.
type SMSChannel interface {
	Send(ctx context.Context, phone, text string) error
}

// DriverLookup resolves driver name and device token.
type DriverLookup interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
}
