package domain

// Role selects which transition table gates a status change.
type Role string

// List of actor roles.
const (
	// RoleDispatcher is store staff acting through the dashboard.
	RoleDispatcher Role = "dispatcher"
	// RoleDriver is the assigned driver acting through the driver app.
	RoleDriver Role = "driver"
	// RoleProvider is an external delivery provider reporting via webhook.
	RoleProvider Role = "provider"
	// RoleSystem is the service itself (dispatch engine, order events).
	RoleSystem Role = "system"
)

type transitionTable map[DeliveryStatus][]DeliveryStatus

var dispatcherTransitions = transitionTable{
	DeliveryPending:   {DeliveryAssigned, DeliveryCancelled},
	DeliveryAssigned:  {DeliveryPickedUp, DeliveryCancelled},
	DeliveryPickedUp:  {DeliveryInTransit},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed, DeliveryDelayed},
	DeliveryDelayed:   {DeliveryInTransit, DeliveryDelivered, DeliveryFailed},
}

// driver table has no cancel and no re-entry to pending/assigned
var driverTransitions = transitionTable{
	DeliveryAssigned:  {DeliveryPickedUp},
	DeliveryPickedUp:  {DeliveryInTransit},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed, DeliveryDelayed},
	DeliveryDelayed:   {DeliveryInTransit, DeliveryDelivered, DeliveryFailed},
}

func (r Role) table() transitionTable {
	if r == RoleDriver {
		return driverTransitions
	}
	return dispatcherTransitions
}

// CanTransition reports whether role may move a delivery from one status to another.
func CanTransition(role Role, from, to DeliveryStatus) bool {
	for _, next := range role.table()[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s for role.
func NextStatuses(role Role, from DeliveryStatus) []DeliveryStatus {
	next := role.table()[from]
	out := make([]DeliveryStatus, len(next))
	copy(out, next)
	return out
}
