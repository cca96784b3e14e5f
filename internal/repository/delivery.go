package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/deliverytx"
)

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const deliveryColumns = `
    d.id, d.store_id, d.order_id, COALESCE(o.order_number, ''), d.driver_id, d.last_driver_id,
    d.delivery_number, d.status, d.delivery_type, d.provider_tracking_id,
    d.pickup_address, d.delivery_address, d.delivery_lat, d.delivery_lng,
    d.customer_name, d.customer_phone, d.fee::text, d.required_vehicle_type,
    d.scheduled_date, d.scheduled_time_slot, d.notes, d.failure_reason, d.proof_photo_url,
    d.estimated_delivery_time, d.actual_delivery_time, d.ai_assignment, d.created_at, d.updated_at`

const deliveryFrom = `
    FROM deliveries d
    LEFT JOIN orders o ON o.id = d.order_id`

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var (
		d        domain.Delivery
		lat, lng *float64
		fee      string
		vehicle  *string
		snapshot []byte
	)
	err := row.Scan(
		&d.ID, &d.StoreID, &d.OrderID, &d.OrderNumber, &d.DriverID, &d.LastDriverID,
		&d.DeliveryNumber, &d.Status, &d.Type, &d.ProviderTrackingID,
		&d.PickupAddress, &d.DeliveryAddress, &lat, &lng,
		&d.CustomerName, &d.CustomerPhone, &fee, &vehicle,
		&d.ScheduledDate, &d.ScheduledTimeSlot, &d.Notes, &d.FailureReason, &d.ProofPhotoURL,
		&d.EstimatedDeliveryTime, &d.ActualDeliveryTime, &snapshot, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		d.DeliveryLocation = &domain.Point{Lat: *lat, Lng: *lng}
	}
	if d.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("parse fee %q: %w", fee, err)
	}
	if vehicle != nil {
		v := domain.VehicleType(*vehicle)
		d.RequiredVehicleType = &v
	}
	if len(snapshot) > 0 {
		var s domain.AssignmentSnapshot
		if err := json.Unmarshal(snapshot, &s); err != nil {
			return nil, fmt.Errorf("decode ai_assignment: %w", err)
		}
		d.AIAssignment = &s
	}
	return &d, nil
}

// GetDelivery returns the store's delivery or nil, nil.
func (r *DeliveryRepo) GetDelivery(ctx context.Context, storeID, id uuid.UUID) (*domain.Delivery, error) {
	return getDelivery(ctx, r.db, storeID, id)
}

// GetByTrackingID finds an external provider delivery by its tracking id.
func (r *DeliveryRepo) GetByTrackingID(ctx context.Context, storeID uuid.UUID, trackingID string) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+deliveryFrom+` WHERE d.store_id = $1 AND d.provider_tracking_id = $2`,
		storeID, trackingID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by tracking id %q: %w", trackingID, err)
	}
	return d, nil
}

// GetByOrderID returns the live delivery linked to an order, newest first, or nil, nil.
func (r *DeliveryRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+deliveryFrom+`
         WHERE d.order_id = $1
         ORDER BY d.created_at DESC
         LIMIT 1`, orderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by order %s: %w", orderID, err)
	}
	return d, nil
}

// ListStatusLogs returns a delivery's audit trail oldest first.
func (r *DeliveryRepo) ListStatusLogs(ctx context.Context, deliveryID uuid.UUID) ([]domain.StatusLog, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, delivery_id, status, actor, notes, lat, lng, created_at
        FROM delivery_status_logs
        WHERE delivery_id = $1
        ORDER BY id
    `, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list status logs %s: %w", deliveryID, err)
	}
	defer rows.Close()

	var out []domain.StatusLog
	for rows.Next() {
		var (
			l        domain.StatusLog
			lat, lng *float64
		)
		if err := rows.Scan(&l.ID, &l.DeliveryID, &l.Status, &l.Actor, &l.Notes, &lat, &lng, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status log: %w", err)
		}
		if lat != nil && lng != nil {
			l.Location = &domain.Point{Lat: *lat, Lng: *lng}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// SaveAssignment stores the engine snapshot on the delivery.
func (r *DeliveryRepo) SaveAssignment(ctx context.Context, storeID, id uuid.UUID, s domain.AssignmentSnapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode ai_assignment: %w", err)
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE deliveries
        SET ai_assignment = $3, updated_at = now()
        WHERE id = $1 AND store_id = $2
    `, id, storeID, raw)
	if err != nil {
		return fmt.Errorf("save ai_assignment %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("save ai_assignment %s: %w", id, apperr.ErrDeliveryNotFound)
	}
	return nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getDelivery(ctx context.Context, q querier, storeID, id uuid.UUID) (*domain.Delivery, error) {
	d, err := scanDelivery(q.QueryRow(ctx,
		`SELECT `+deliveryColumns+deliveryFrom+` WHERE d.store_id = $1 AND d.id = $2`, storeID, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %s: %w", id, err)
	}
	return d, nil
}

// GetDeliveryByID looks a delivery up without a store scope, for the driver app.
func (r *DeliveryRepo) GetDeliveryByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, `SELECT `+deliveryColumns+deliveryFrom+` WHERE d.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %s: %w", id, err)
	}
	return d, nil
}
