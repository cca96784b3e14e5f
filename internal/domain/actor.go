package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Actor identifies who requested a transition.
type Actor struct {
	Role     Role
	Label    string
	DriverID *uuid.UUID
}

// SystemActor returns the service actor.
func SystemActor() Actor {
	return Actor{Role: RoleSystem, Label: "system"}
}

// ProviderActor returns the external provider actor.
func ProviderActor() Actor {
	return Actor{Role: RoleProvider, Label: "provider"}
}

// EngineActor labels commits made by the assignment engine.
func EngineActor(method string) Actor {
	return Actor{Role: RoleSystem, Label: fmt.Sprintf("AI (%s)", method)}
}

// StaffActor labels a store staff member.
func StaffActor(email string) Actor {
	return Actor{Role: RoleDispatcher, Label: email}
}

// DriverActor labels the driver app.
func DriverActor(id uuid.UUID, name string) Actor {
	return Actor{Role: RoleDriver, Label: name, DriverID: &id}
}
