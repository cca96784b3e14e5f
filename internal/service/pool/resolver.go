// Package pool builds the candidate pool of a store.
package pool

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"delivery-dispatch/internal/domain"
)

// Resolver builds DriverCandidates for a store. It never writes.
type Resolver struct {
	drivers DriverReader
}

// NewResolver creates a Resolver.
func NewResolver(drivers DriverReader) *Resolver {
	return &Resolver{drivers: drivers}
}

// Resolve returns the store's own drivers plus drivers shared in through active assignments,
// restricted to operational statuses. An empty pool is not an error.
func (r *Resolver) Resolve(ctx context.Context, storeID uuid.UUID) ([]domain.DriverCandidate, error) {
	shared, err := r.drivers.SharedDriverIDs(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("shared drivers: %w", err)
	}

	drivers, err := r.drivers.OperationalDrivers(ctx, storeID, shared)
	if err != nil {
		return nil, fmt.Errorf("pool drivers: %w", err)
	}
	drivers = dedupe(storeID, drivers)
	if len(drivers) == 0 {
		return []domain.DriverCandidate{}, nil
	}

	ids := make([]uuid.UUID, len(drivers))
	for i, d := range drivers {
		ids[i] = d.ID
	}

	var (
		counts map[uuid.UUID]int
		stats  map[uuid.UUID]domain.CompletionStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = r.drivers.ActiveCounts(gctx, ids)
		if err != nil {
			return fmt.Errorf("active counts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = r.drivers.CompletionStats(gctx, ids)
		if err != nil {
			return fmt.Errorf("completion stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.DriverCandidate, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, domain.DriverCandidate{
			DriverID:            d.ID,
			Name:                d.Name,
			VehicleType:         d.VehicleType,
			Location:            d.Location,
			Status:              d.Status,
			Shared:              d.StoreID != storeID,
			ActiveDeliveryCount: counts[d.ID],
			CompletionRate:      stats[d.ID].Rate(),
		})
	}
	return out, nil
}

// dedupe keeps one row per driver, preferring the home-store row, and drops non-operational drivers.
func dedupe(storeID uuid.UUID, drivers []domain.Driver) []domain.Driver {
	idx := make(map[uuid.UUID]int, len(drivers))
	out := make([]domain.Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.Status.Operational() {
			continue
		}
		if i, ok := idx[d.ID]; ok {
			if d.StoreID == storeID && out[i].StoreID != storeID {
				out[i] = d
			}
			continue
		}
		idx[d.ID] = len(out)
		out = append(out, d)
	}
	return out
}
