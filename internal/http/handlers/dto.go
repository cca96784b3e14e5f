package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"delivery-dispatch/internal/domain"
)

type pointDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type createDeliveryRequest struct {
	OrderID               *uuid.UUID       `json:"order_id"`
	DriverID              *uuid.UUID       `json:"driver_id"`
	DeliveryType          string           `json:"delivery_type" validate:"omitempty,oneof=own_driver external_provider"`
	ProviderTrackingID    *string          `json:"provider_tracking_id" validate:"omitempty,max=128"`
	PickupAddress         string           `json:"pickup_address" validate:"max=500"`
	DeliveryAddress       string           `json:"delivery_address" validate:"required,max=500"`
	DeliveryLocation      *pointDTO        `json:"delivery_location"`
	CustomerName          string           `json:"customer_name" validate:"required,max=200"`
	CustomerPhone         string           `json:"customer_phone" validate:"required,max=32"`
	Fee                   *decimal.Decimal `json:"fee"`
	RequiredVehicleType   *string          `json:"required_vehicle_type" validate:"omitempty,oneof=on_foot bicycle motorcycle car"`
	ScheduledDate         *string          `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTimeSlot     string           `json:"scheduled_time_slot" validate:"max=50"`
	Notes                 string           `json:"notes" validate:"max=1000"`
	EstimatedDeliveryTime *time.Time       `json:"estimated_delivery_time"`
}

type statusRequest struct {
	Status        string     `json:"status" validate:"required,oneof=pending assigned picked_up in_transit delayed delivered failed cancelled"`
	DriverID      *uuid.UUID `json:"driver_id"`
	FailureReason *string    `json:"failure_reason" validate:"omitempty,max=500"`
	ProofPhotoURL *string    `json:"proof_photo_url" validate:"omitempty,url"`
	Notes         *string    `json:"notes" validate:"omitempty,max=1000"`
	Location      *pointDTO  `json:"location"`
}

type providerWebhookRequest struct {
	TrackingID    string    `json:"tracking_id" validate:"required,max=128"`
	Status        string    `json:"status" validate:"required,oneof=assigned picked_up in_transit delayed delivered failed cancelled"`
	FailureReason *string   `json:"failure_reason" validate:"omitempty,max=500"`
	ProofPhotoURL *string   `json:"proof_photo_url" validate:"omitempty,url"`
	Notes         *string   `json:"notes" validate:"omitempty,max=1000"`
	Location      *pointDTO `json:"location"`
}

type deliveryDTO struct {
	ID                    uuid.UUID                  `json:"id"`
	StoreID               uuid.UUID                  `json:"store_id"`
	OrderID               *uuid.UUID                 `json:"order_id"`
	OrderNumber           string                     `json:"order_number,omitempty"`
	DriverID              *uuid.UUID                 `json:"driver_id"`
	DeliveryNumber        string                     `json:"delivery_number"`
	Status                domain.DeliveryStatus      `json:"status"`
	DeliveryType          domain.DeliveryType        `json:"delivery_type"`
	ProviderTrackingID    *string                    `json:"provider_tracking_id,omitempty"`
	PickupAddress         string                     `json:"pickup_address"`
	DeliveryAddress       string                     `json:"delivery_address"`
	DeliveryLocation      *domain.Point              `json:"delivery_location,omitempty"`
	CustomerName          string                     `json:"customer_name"`
	CustomerPhone         string                     `json:"customer_phone"`
	Fee                   decimal.Decimal            `json:"fee"`
	RequiredVehicleType   *domain.VehicleType        `json:"required_vehicle_type,omitempty"`
	ScheduledDate         *string                    `json:"scheduled_date,omitempty"`
	ScheduledTimeSlot     string                     `json:"scheduled_time_slot,omitempty"`
	Notes                 string                     `json:"notes,omitempty"`
	FailureReason         *string                    `json:"failure_reason,omitempty"`
	ProofPhotoURL         *string                    `json:"proof_photo_url,omitempty"`
	EstimatedDeliveryTime *time.Time                 `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time                 `json:"actual_delivery_time,omitempty"`
	AIAssignment          *domain.AssignmentSnapshot `json:"ai_assignment,omitempty"`
	CreatedAt             time.Time                  `json:"created_at"`
	UpdatedAt             time.Time                  `json:"updated_at"`
}

type statusLogDTO struct {
	Status    domain.DeliveryStatus `json:"status"`
	Actor     string                `json:"actor"`
	Notes     string                `json:"notes,omitempty"`
	Location  *domain.Point         `json:"location,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

type deliveryDetailsResponse struct {
	Delivery deliveryDTO    `json:"delivery"`
	History  []statusLogDTO `json:"status_history"`
}

type transitionResponse struct {
	Delivery deliveryDTO           `json:"delivery"`
	From     domain.DeliveryStatus `json:"previous_status"`
	Log      statusLogDTO          `json:"log"`
}

type dispatchResponse struct {
	Outcome    string                  `json:"outcome"`
	Assignment domain.AssignmentResult `json:"assignment"`
	Delivery   *deliveryDTO            `json:"delivery,omitempty"`
	Target     string                  `json:"target_source"`
}

type poolResponse struct {
	StoreID uuid.UUID                `json:"store_id"`
	Drivers []domain.DriverCandidate `json:"drivers"`
}
