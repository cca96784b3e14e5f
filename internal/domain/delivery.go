package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Delivery - one physical delivery task.
type Delivery struct {
	ID                    uuid.UUID
	StoreID               uuid.UUID
	OrderID               *uuid.UUID
	OrderNumber           string
	DriverID              *uuid.UUID
	LastDriverID          *uuid.UUID
	DeliveryNumber        string
	Status                DeliveryStatus
	Type                  DeliveryType
	ProviderTrackingID    *string
	PickupAddress         string
	DeliveryAddress       string
	DeliveryLocation      *Point
	CustomerName          string
	CustomerPhone         string
	Fee                   decimal.Decimal
	RequiredVehicleType   *VehicleType
	ScheduledDate         *time.Time
	ScheduledTimeSlot     string
	Notes                 string
	FailureReason         *string
	ProofPhotoURL         *string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	AIAssignment          *AssignmentSnapshot
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// StatusLog is one append-only audit row written per transition.
type StatusLog struct {
	ID         int64
	DeliveryID uuid.UUID
	Status     DeliveryStatus
	Actor      string
	Notes      string
	Location   *Point
	CreatedAt  time.Time
}

// StatusChange describes a committed status write.
// Expected is the status the change was computed against.
type StatusChange struct {
	DeliveryID         uuid.UUID
	Expected           DeliveryStatus
	Target             DeliveryStatus
	DriverID           *uuid.UUID
	ClearDriver        bool
	FailureReason      *string
	ProofPhotoURL      *string
	Notes              *string
	ActualDeliveryTime *time.Time
	At                 time.Time
}

// TransitionResult is returned after a successful transition.
type TransitionResult struct {
	Delivery Delivery
	From     DeliveryStatus
	Log      StatusLog
}

// RequiresDriver reports whether the delivery must reference one of the
// store's drivers while in status s. Provider deliveries never do: the
// provider runs its own fleet and only reports progress.
func (d Delivery) RequiresDriver(s DeliveryStatus) bool {
	return d.Type != DeliveryTypeProvider && s.HoldsDriver()
}

// DriverConsistent reports whether DriverID agrees with the current status.
func (d Delivery) DriverConsistent() bool {
	if d.Type == DeliveryTypeProvider {
		return d.DriverID == nil
	}
	return (d.DriverID != nil) == d.Status.HoldsDriver()
}
