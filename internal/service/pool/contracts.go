//go:generate mockgen -source=contracts.go -destination=pool_mocks_test.go -package=pool_test

package pool

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
)

// DriverReader is the read side the resolver needs.
type DriverReader interface {
	SharedDriverIDs(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error)
	OperationalDrivers(ctx context.Context, storeID uuid.UUID, shared []uuid.UUID) ([]domain.Driver, error)
	ActiveCounts(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CompletionStats(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]domain.CompletionStats, error)
}
