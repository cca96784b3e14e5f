package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"delivery-dispatch/internal/service/orders"
)

// EventDTO is the wire form of an order status event
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	StoreID   string    `json:"store_id,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) (orders.Event, error) {
	raw := strings.TrimSpace(dto.OrderID)
	if raw == "" {
		return orders.Event{}, errors.New("empty order_id")
	}
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return orders.Event{}, fmt.Errorf("order_id: %w", err)
	}
	ev := orders.Event{
		OrderID:   orderID,
		Status:    strings.TrimSpace(dto.Status),
		Reason:    strings.TrimSpace(dto.Reason),
		CreatedAt: dto.CreatedAt,
	}
	if s := strings.TrimSpace(dto.StoreID); s != "" {
		storeID, err := uuid.Parse(s)
		if err != nil {
			return orders.Event{}, fmt.Errorf("store_id: %w", err)
		}
		ev.StoreID = storeID
	}
	return ev, nil
}
