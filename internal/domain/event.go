package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventName is a notification trigger.
type EventName string

// List of notification events
const (
	EventAssigned  EventName = "delivery_assigned"
	EventPickedUp  EventName = "delivery_picked_up"
	EventCompleted EventName = "delivery_completed"
	EventFailed    EventName = "delivery_failed"
	EventDelayed   EventName = "delivery_delayed"
)

// EventFor returns the event fired on entering status, if any.
func EventFor(s DeliveryStatus) (EventName, bool) {
	switch s {
	case DeliveryAssigned:
		return EventAssigned, true
	case DeliveryPickedUp:
		return EventPickedUp, true
	case DeliveryDelivered:
		return EventCompleted, true
	case DeliveryFailed:
		return EventFailed, true
	case DeliveryDelayed:
		return EventDelayed, true
	default:
		return "", false
	}
}

// DeliveryEvent is the payload handed to notification channels after a commit.
type DeliveryEvent struct {
	Name           EventName  `json:"event"`
	StoreID        uuid.UUID  `json:"store_id"`
	DeliveryID     uuid.UUID  `json:"delivery_id"`
	DeliveryNumber string     `json:"delivery_number"`
	OrderNumber    string     `json:"order_number,omitempty"`
	DriverID       *uuid.UUID `json:"driver_id,omitempty"`
	DriverName     string     `json:"driver_name,omitempty"`
	CustomerName   string     `json:"customer_name,omitempty"`
	CustomerPhone  string     `json:"-"`
	Address        string     `json:"delivery_address,omitempty"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	At             time.Time  `json:"at"`
}

// NewDeliveryEvent builds the event for d after entering its current status.
func NewDeliveryEvent(name EventName, d Delivery, at time.Time) DeliveryEvent {
	driver := d.DriverID
	if driver == nil {
		driver = d.LastDriverID
	}
	return DeliveryEvent{
		Name:           name,
		StoreID:        d.StoreID,
		DeliveryID:     d.ID,
		DeliveryNumber: d.DeliveryNumber,
		OrderNumber:    d.OrderNumber,
		DriverID:       driver,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		Address:        d.DeliveryAddress,
		FailureReason:  d.FailureReason,
		Notes:          d.Notes,
		At:             at,
	}
}
