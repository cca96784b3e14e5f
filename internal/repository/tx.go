package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/deliverytx"
)

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ deliverytx.Repository = (*TxRepo)(nil)

// GetDelivery reads a delivery inside the transaction.
func (r *TxRepo) GetDelivery(ctx context.Context, storeID, id uuid.UUID) (*domain.Delivery, error) {
	return getDelivery(ctx, r.tx, storeID, id)
}

// InsertDelivery - insert a new delivery.
func (r *TxRepo) InsertDelivery(ctx context.Context, d *domain.Delivery) error {
	var lat, lng *float64
	if d.DeliveryLocation != nil {
		lat, lng = &d.DeliveryLocation.Lat, &d.DeliveryLocation.Lng
	}
	var vehicle *string
	if d.RequiredVehicleType != nil {
		v := string(*d.RequiredVehicleType)
		vehicle = &v
	}
	var snapshot []byte
	if d.AIAssignment != nil {
		raw, err := json.Marshal(d.AIAssignment)
		if err != nil {
			return fmt.Errorf("encode ai_assignment: %w", err)
		}
		snapshot = raw
	}
	err := r.tx.QueryRow(ctx, `
        INSERT INTO deliveries (
            id, store_id, order_id, driver_id, last_driver_id, delivery_number, status, delivery_type,
            provider_tracking_id, pickup_address, delivery_address, delivery_lat, delivery_lng,
            customer_name, customer_phone, fee, required_vehicle_type, scheduled_date,
            scheduled_time_slot, notes, estimated_delivery_time, ai_assignment, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16::numeric, $17, $18,
                $19, $20, $21, $22, $23, $23)
        RETURNING created_at, updated_at
    `,
		d.ID, d.StoreID, d.OrderID, d.DriverID, d.LastDriverID, d.DeliveryNumber, string(d.Status), string(d.Type),
		d.ProviderTrackingID, d.PickupAddress, d.DeliveryAddress, lat, lng,
		d.CustomerName, d.CustomerPhone, d.Fee.String(), vehicle, d.ScheduledDate,
		d.ScheduledTimeSlot, d.Notes, d.EstimatedDeliveryTime, snapshot, d.CreatedAt,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return classify(err, "insert delivery")
	}
	return nil
}

// UpdateStatus writes the new status only if the stored status still equals change.Expected.
func (r *TxRepo) UpdateStatus(ctx context.Context, c domain.StatusChange) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $3,
            driver_id = CASE WHEN $4::boolean THEN NULL ELSE COALESCE($5, driver_id) END,
            last_driver_id = COALESCE($5, last_driver_id),
            failure_reason = $6,
            proof_photo_url = COALESCE($7, proof_photo_url),
            notes = COALESCE($8, notes),
            actual_delivery_time = $9,
            updated_at = $10
        WHERE id = $1 AND status = $2
    `,
		c.DeliveryID, string(c.Expected), string(c.Target),
		c.ClearDriver, c.DriverID,
		c.FailureReason, c.ProofPhotoURL, c.Notes, c.ActualDeliveryTime, c.At,
	)
	if err != nil {
		return false, classify(err, "update delivery "+c.DeliveryID.String()+" status")
	}
	return ct.RowsAffected() == 1, nil
}

// InsertStatusLog appends one audit row.
func (r *TxRepo) InsertStatusLog(ctx context.Context, l *domain.StatusLog) error {
	var lat, lng *float64
	if l.Location != nil {
		lat, lng = &l.Location.Lat, &l.Location.Lng
	}
	err := r.tx.QueryRow(ctx, `
        INSERT INTO delivery_status_logs (delivery_id, status, actor, notes, lat, lng, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, l.DeliveryID, string(l.Status), l.Actor, l.Notes, lat, lng, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}
	return nil
}

// CountActiveDeliveries counts the driver's non-terminal deliveries other than excludeDeliveryID.
func (r *TxRepo) CountActiveDeliveries(ctx context.Context, driverID, excludeDeliveryID uuid.UUID) (int, error) {
	var n int
	err := r.tx.QueryRow(ctx, `
        SELECT count(*)
        FROM deliveries
        WHERE driver_id = $1
          AND id <> $2
          AND status = ANY($3)
    `, driverID, excludeDeliveryID, activeStatuses()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active deliveries of %s: %w", driverID, err)
	}
	return n, nil
}

// SetDriverOnDelivery - marks the driver as holding a delivery.
func (r *TxRepo) SetDriverOnDelivery(ctx context.Context, driverID uuid.UUID) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_drivers
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, driverID, string(domain.DriverOnDelivery))
	if err != nil {
		return fmt.Errorf("update driver %s status: %w", driverID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", driverID)
	}
	return nil
}

// ReleaseDriver - on_delivery back to active. Inactive drivers are left alone.
func (r *TxRepo) ReleaseDriver(ctx context.Context, driverID uuid.UUID) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_drivers
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status = $3
    `, driverID, string(domain.DriverActive), string(domain.DriverOnDelivery))
	if err != nil {
		return false, fmt.Errorf("release driver %s: %w", driverID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// MarkOrderDelivered advances the linked order.
func (r *TxRepo) MarkOrderDelivered(ctx context.Context, storeID, orderID uuid.UUID) error {
	_, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = 'delivered', updated_at = now()
        WHERE id = $1 AND store_id = $2
    `, orderID, storeID)
	if err != nil {
		return fmt.Errorf("mark order %s delivered: %w", orderID, err)
	}
	return nil
}

func activeStatuses() []string {
	out := make([]string, len(domain.ActiveDeliveryStatuses))
	for i, s := range domain.ActiveDeliveryStatuses {
		out[i] = string(s)
	}
	return out
}
