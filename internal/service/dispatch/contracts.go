//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
)

// DeliveryStore reads the delivery and keeps the engine audit record.
type DeliveryStore interface {
	GetDelivery(ctx context.Context, storeID, id uuid.UUID) (*domain.Delivery, error)
	SaveAssignment(ctx context.Context, storeID, id uuid.UUID, s domain.AssignmentSnapshot) error
}

// SettingsProvider returns the store assignment rules.
type SettingsProvider interface {
	Get(ctx context.Context, storeID uuid.UUID) (domain.StoreSettings, error)
}

// PoolResolver returns the candidate pool of a store.
type PoolResolver interface {
	Resolve(ctx context.Context, storeID uuid.UUID) ([]domain.DriverCandidate, error)
}

// Locator resolves the delivery target point.
type Locator interface {
	Locate(ctx context.Context, d domain.Delivery) (*domain.Point, geo.Source)
}

// Engine ranks candidates. It is pure.
type Engine interface {
	Assign(target domain.AssignTarget, candidates []domain.DriverCandidate, rules domain.AssignmentRules) domain.AssignmentResult
}

// Committer applies pending -> assigned through the state machine.
type Committer interface {
	Commit(ctx context.Context, storeID, deliveryID, driverID uuid.UUID, actor domain.Actor) (domain.TransitionResult, error)
}

// DriverLocker serialises commits per driver.
type DriverLocker interface {
	Acquire(ctx context.Context, driverID uuid.UUID) (func(context.Context), error)
}

// CapacityCounter recounts live active deliveries.
type CapacityCounter interface {
	ActiveCounts(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
