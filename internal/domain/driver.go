package domain

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a person who fulfills deliveries for a home store.
type Driver struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	Name          string
	Phone         string
	VehicleType   VehicleType
	VehicleNumber string
	Status        DriverStatus
	Location      *Point
	LocationAt    *time.Time
	PushToken     *string
}

// DriverStoreAssignment grants a store the right to include a foreign driver in its pool.
type DriverStoreAssignment struct {
	DriverID uuid.UUID
	StoreID  uuid.UUID
	Active   bool
}

// DriverCandidate is computed per assignment evaluation and never persisted.
type DriverCandidate struct {
	DriverID            uuid.UUID    `json:"driver_id"`
	Name                string       `json:"name"`
	VehicleType         VehicleType  `json:"vehicle_type"`
	Location            *Point       `json:"location,omitempty"`
	Status              DriverStatus `json:"status"`
	Shared              bool         `json:"shared"`
	ActiveDeliveryCount int          `json:"active_delivery_count"`
	CompletionRate      float64      `json:"completion_rate"`
}

// CompletionStats are historical outcome counts of a driver.
type CompletionStats struct {
	Delivered int
	Failed    int
}

// Rate returns completed/(completed+failed) as 0..100, 100 without history.
func (s CompletionStats) Rate() float64 {
	total := s.Delivered + s.Failed
	if total == 0 {
		return 100
	}
	return float64(s.Delivered) / float64(total) * 100
}
