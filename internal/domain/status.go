package domain

type (
	// DeliveryStatus represents the lifecycle status of a delivery.
	DeliveryStatus string
	// DriverStatus represents the operational status of a driver.
	DriverStatus string
	// VehicleType represents the vehicle a driver uses.
	VehicleType string
	// DeliveryType tells who fulfills the delivery.
	DeliveryType string
)

// List of possible delivery statuses
const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelayed   DeliveryStatus = "delayed"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// List of possible driver statuses
const (
	DriverActive     DriverStatus = "active"
	DriverOnDelivery DriverStatus = "on_delivery"
	DriverInactive   DriverStatus = "inactive"
)

// List of possible vehicle types
const (
	VehicleOnFoot     VehicleType = "on_foot"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
)

// List of delivery types
const (
	DeliveryTypeOwnDriver DeliveryType = "own_driver"
	DeliveryTypeProvider  DeliveryType = "external_provider"
)

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryPending, DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit,
	DeliveryDelayed, DeliveryDelivered, DeliveryFailed, DeliveryCancelled,
}

var allowedDriverStatuses = [...]DriverStatus{
	DriverActive, DriverOnDelivery, DriverInactive,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleOnFoot, VehicleBicycle, VehicleMotorcycle, VehicleCar,
}

// ActiveDeliveryStatuses are the non-terminal statuses that hold a driver.
var ActiveDeliveryStatuses = []DeliveryStatus{
	DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit, DeliveryDelayed,
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed || s == DeliveryCancelled
}

// HoldsDriver reports whether an own-driver delivery in status s must reference a driver.
func (s DeliveryStatus) HoldsDriver() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit, DeliveryDelayed, DeliveryDelivered:
		return true
	default:
		return false
	}
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Operational reports whether a driver in status s may be offered work.
func (s DriverStatus) Operational() bool {
	return s == DriverActive || s == DriverOnDelivery
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryType is valid
func (t DeliveryType) Valid() bool {
	return t == DeliveryTypeOwnDriver || t == DeliveryTypeProvider
}
