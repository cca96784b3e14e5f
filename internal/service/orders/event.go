package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order statuses the dispatch service reacts to. Both spellings of
// cancelled are published by the order component.
const (
	StatusCanceled  = "canceled"
	StatusCancelled = "cancelled"
	StatusDeleted   = "deleted"
)

// Event is a single order status change published by the order component.
// StoreID is optional on the wire; when set it must match the delivery's store.
type Event struct {
	OrderID   uuid.UUID
	StoreID   uuid.UUID
	Status    string
	Reason    string
	CreatedAt time.Time
}

// NormalizedStatus is Status lower-cased and trimmed.
func (e Event) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(e.Status))
}

// CancelNote is the status log note written when the event cancels a delivery.
func (e Event) CancelNote() string {
	note := "order " + e.NormalizedStatus()
	if r := strings.TrimSpace(e.Reason); r != "" {
		note += ": " + r
	}
	return note
}
