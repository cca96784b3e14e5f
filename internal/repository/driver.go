package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

// DriverRepo reads drivers and their pool memberships.
type DriverRepo struct {
	db *pgxpool.Pool
}

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo {
	return &DriverRepo{db: db}
}

const driverColumns = `id, store_id, name, phone, vehicle_type, vehicle_number, status, lat, lng, location_updated_at, push_token`

func scanDriver(row pgx.Row) (domain.Driver, error) {
	var (
		d        domain.Driver
		lat, lng *float64
		at       *time.Time
	)
	if err := row.Scan(&d.ID, &d.StoreID, &d.Name, &d.Phone, &d.VehicleType, &d.VehicleNumber,
		&d.Status, &lat, &lng, &at, &d.PushToken); err != nil {
		return domain.Driver{}, err
	}
	if lat != nil && lng != nil {
		d.Location = &domain.Point{Lat: *lat, Lng: *lng}
		d.LocationAt = at
	}
	return d, nil
}

// GetDriver returns nil, nil when the driver does not exist.
func (r *DriverRepo) GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM delivery_drivers WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %s: %w", id, err)
	}
	return &d, nil
}

// SharedDriverIDs returns drivers lent to storeID through active assignments.
func (r *DriverRepo) SharedDriverIDs(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
        SELECT driver_id
        FROM driver_store_assignments
        WHERE store_id = $1 AND status = 'active'
    `, storeID)
	if err != nil {
		return nil, fmt.Errorf("list shared drivers of %s: %w", storeID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan shared drivers: %w", err)
	}
	return ids, nil
}

// OperationalDrivers returns active or on_delivery drivers whose home is storeID or whose id is in shared.
func (r *DriverRepo) OperationalDrivers(ctx context.Context, storeID uuid.UUID, shared []uuid.UUID) ([]domain.Driver, error) {
	if shared == nil {
		shared = []uuid.UUID{}
	}
	rows, err := r.db.Query(ctx, `
        SELECT `+driverColumns+`
        FROM delivery_drivers
        WHERE (store_id = $1 OR id = ANY($2))
          AND status IN ('active', 'on_delivery')
        ORDER BY id
    `, storeID, shared)
	if err != nil {
		return nil, fmt.Errorf("list pool drivers of %s: %w", storeID, err)
	}
	defer rows.Close()

	var out []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ActiveCounts returns the live non-terminal delivery count per driver. Missing drivers have zero.
func (r *DriverRepo) ActiveCounts(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx, `
        SELECT driver_id, count(*)
        FROM deliveries
        WHERE driver_id = ANY($1) AND status = ANY($2)
        GROUP BY driver_id
    `, driverIDs, activeStatuses())
	if err != nil {
		return nil, fmt.Errorf("count active deliveries: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]int, len(driverIDs))
	for rows.Next() {
		var (
			id uuid.UUID
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan active count: %w", err)
		}
		out[id] = n
	}
	return out, rows.Err()
}

// CompletionStats returns delivered and failed counts per driver, keyed by last_driver_id.
func (r *DriverRepo) CompletionStats(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]domain.CompletionStats, error) {
	rows, err := r.db.Query(ctx, `
        SELECT last_driver_id,
               count(*) FILTER (WHERE status = 'delivered'),
               count(*) FILTER (WHERE status = 'failed')
        FROM deliveries
        WHERE last_driver_id = ANY($1) AND status IN ('delivered', 'failed')
        GROUP BY last_driver_id
    `, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("completion stats: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]domain.CompletionStats, len(driverIDs))
	for rows.Next() {
		var (
			id uuid.UUID
			s  domain.CompletionStats
		)
		if err := rows.Scan(&id, &s.Delivered, &s.Failed); err != nil {
			return nil, fmt.Errorf("scan completion stats: %w", err)
		}
		out[id] = s
	}
	return out, rows.Err()
}
