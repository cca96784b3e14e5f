// Package memstore is an in-memory stand-in for the Postgres repositories, used by service tests.
// Each call is atomic on its own; WithTx does not isolate or roll back, so concurrent transactions
// interleave the way read-committed Postgres transactions do around the status CAS.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/deliverytx"
)

// Store holds deliveries, drivers, status logs and order states.
type Store struct {
	mu          sync.Mutex
	deliveries  map[uuid.UUID]domain.Delivery
	drivers     map[uuid.UUID]domain.Driver
	shared      map[uuid.UUID][]uuid.UUID
	orders      map[uuid.UUID]string
	logs        []domain.StatusLog
	assignments map[uuid.UUID]domain.AssignmentSnapshot
	nextLogID   int64

	// BeforeGet runs before every GetDelivery, outside the lock.
	BeforeGet func(id uuid.UUID)
	// FailOn makes the named method return the error.
	FailOn map[string]error
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		deliveries:  make(map[uuid.UUID]domain.Delivery),
		drivers:     make(map[uuid.UUID]domain.Driver),
		shared:      make(map[uuid.UUID][]uuid.UUID),
		orders:      make(map[uuid.UUID]string),
		assignments: make(map[uuid.UUID]domain.AssignmentSnapshot),
		FailOn:      make(map[string]error),
	}
}

var _ deliverytx.Runner = (*Store)(nil)
var _ deliverytx.Repository = (*Store)(nil)

// PutDelivery stores d as is.
func (s *Store) PutDelivery(d domain.Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries[d.ID] = d
}

// PutDriver stores drv as is.
func (s *Store) PutDriver(drv domain.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[drv.ID] = drv
}

// Share lends driverID to storeID.
func (s *Store) Share(storeID, driverID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shared[storeID] = append(s.shared[storeID], driverID)
}

// PutOrder registers an order with a status.
func (s *Store) PutOrder(id uuid.UUID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[id] = status
}

// Delivery returns the stored delivery.
func (s *Store) Delivery(id uuid.UUID) domain.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveries[id]
}

// Driver returns the stored driver.
func (s *Store) Driver(id uuid.UUID) domain.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers[id]
}

// OrderStatus returns the stored order status.
func (s *Store) OrderStatus(id uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

// Logs returns the status log rows of a delivery in insert order.
func (s *Store) Logs(deliveryID uuid.UUID) []domain.StatusLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StatusLog
	for _, l := range s.logs {
		if l.DeliveryID == deliveryID {
			out = append(out, l)
		}
	}
	return out
}

// Assignment returns the saved engine snapshot.
func (s *Store) Assignment(deliveryID uuid.UUID) (domain.AssignmentSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[deliveryID]
	return a, ok
}

func (s *Store) fail(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.FailOn[method]
}

// WithTx runs fn against the store itself.
func (s *Store) WithTx(_ context.Context, fn func(tx deliverytx.Repository) error) error {
	if err := s.fail("WithTx"); err != nil {
		return err
	}
	return fn(s)
}

// GetDelivery returns nil, nil when no delivery of storeID matches.
func (s *Store) GetDelivery(_ context.Context, storeID, id uuid.UUID) (*domain.Delivery, error) {
	if s.BeforeGet != nil {
		s.BeforeGet(id)
	}
	if err := s.fail("GetDelivery"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[id]
	if !ok || d.StoreID != storeID {
		return nil, nil
	}
	return &d, nil
}

// GetDeliveryByID ignores the store scope.
func (s *Store) GetDeliveryByID(_ context.Context, id uuid.UUID) (*domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// GetByTrackingID finds a provider delivery of the store.
func (s *Store) GetByTrackingID(_ context.Context, storeID uuid.UUID, trackingID string) (*domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deliveries {
		if d.StoreID == storeID && d.ProviderTrackingID != nil && *d.ProviderTrackingID == trackingID {
			return &d, nil
		}
	}
	return nil, nil
}

// GetByOrderID returns the delivery linked to the order.
func (s *Store) GetByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deliveries {
		if d.OrderID != nil && *d.OrderID == orderID {
			return &d, nil
		}
	}
	return nil, nil
}

// ListStatusLogs returns the history of a delivery.
func (s *Store) ListStatusLogs(_ context.Context, deliveryID uuid.UUID) ([]domain.StatusLog, error) {
	return s.Logs(deliveryID), nil
}

// SaveAssignment stores the engine snapshot.
func (s *Store) SaveAssignment(_ context.Context, _, id uuid.UUID, snap domain.AssignmentSnapshot) error {
	if err := s.fail("SaveAssignment"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[id]
	if !ok {
		return fmt.Errorf("memstore: %w", apperr.ErrDeliveryNotFound)
	}
	d.AIAssignment = &snap
	s.deliveries[id] = d
	s.assignments[id] = snap
	return nil
}

// InsertDelivery stores a new delivery.
func (s *Store) InsertDelivery(_ context.Context, d *domain.Delivery) error {
	if err := s.fail("InsertDelivery"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.deliveries[d.ID]; ok {
		return errors.New("memstore: duplicate delivery")
	}
	s.deliveries[d.ID] = *d
	return nil
}

// UpdateStatus is the compare-and-set on status.
func (s *Store) UpdateStatus(_ context.Context, c domain.StatusChange) (bool, error) {
	if err := s.fail("UpdateStatus"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries[c.DeliveryID]
	if !ok || d.Status != c.Expected {
		return false, nil
	}
	d.Status = c.Target
	if c.DriverID != nil {
		d.DriverID = c.DriverID
		d.LastDriverID = c.DriverID
	}
	if c.ClearDriver {
		d.DriverID = nil
	}
	d.FailureReason = c.FailureReason
	if c.ProofPhotoURL != nil {
		d.ProofPhotoURL = c.ProofPhotoURL
	}
	if c.Notes != nil {
		d.Notes = *c.Notes
	}
	d.ActualDeliveryTime = c.ActualDeliveryTime
	d.UpdatedAt = c.At
	if !d.DriverConsistent() {
		// same rule as deliveries_driver_chk
		return false, fmt.Errorf("%w: deliveries_driver_chk", apperr.ErrInvalid)
	}
	s.deliveries[d.ID] = d
	return true, nil
}

// InsertStatusLog appends a log row and assigns its id.
func (s *Store) InsertStatusLog(_ context.Context, l *domain.StatusLog) error {
	if err := s.fail("InsertStatusLog"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLogID++
	l.ID = s.nextLogID
	s.logs = append(s.logs, *l)
	return nil
}

// CountActiveDeliveries counts non-terminal deliveries held by the driver, except one.
func (s *Store) CountActiveDeliveries(_ context.Context, driverID, excludeDeliveryID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.deliveries {
		if d.ID == excludeDeliveryID || d.DriverID == nil || *d.DriverID != driverID {
			continue
		}
		if slices.Contains(domain.ActiveDeliveryStatuses, d.Status) {
			n++
		}
	}
	return n, nil
}

// SetDriverOnDelivery marks the driver busy.
func (s *Store) SetDriverOnDelivery(_ context.Context, driverID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drv, ok := s.drivers[driverID]
	if !ok {
		return errors.New("memstore: driver not found")
	}
	drv.Status = domain.DriverOnDelivery
	s.drivers[driverID] = drv
	return nil
}

// ReleaseDriver flips on_delivery back to active.
func (s *Store) ReleaseDriver(_ context.Context, driverID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drv, ok := s.drivers[driverID]
	if !ok || drv.Status != domain.DriverOnDelivery {
		return false, nil
	}
	drv.Status = domain.DriverActive
	s.drivers[driverID] = drv
	return true, nil
}

// MarkOrderDelivered sets the linked order status.
func (s *Store) MarkOrderDelivered(_ context.Context, _, orderID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; ok {
		s.orders[orderID] = "delivered"
	}
	return nil
}

// GetDriver returns nil, nil for an unknown driver.
func (s *Store) GetDriver(_ context.Context, id uuid.UUID) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drv, ok := s.drivers[id]
	if !ok {
		return nil, nil
	}
	return &drv, nil
}

// SharedDriverIDs lists drivers lent to the store.
func (s *Store) SharedDriverIDs(_ context.Context, storeID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.shared[storeID]), nil
}

// OperationalDrivers returns active or on_delivery drivers of the store or in shared, ordered by id.
func (s *Store) OperationalDrivers(_ context.Context, storeID uuid.UUID, shared []uuid.UUID) ([]domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Driver
	for _, drv := range s.drivers {
		if !drv.Status.Operational() {
			continue
		}
		if drv.StoreID == storeID || slices.Contains(shared, drv.ID) {
			out = append(out, drv)
		}
	}
	slices.SortFunc(out, func(a, b domain.Driver) int { return compareIDs(a.ID, b.ID) })
	return out, nil
}

// ActiveCounts counts active deliveries per driver.
func (s *Store) ActiveCounts(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]int, len(ids))
	for _, d := range s.deliveries {
		if d.DriverID == nil || !slices.Contains(ids, *d.DriverID) {
			continue
		}
		if slices.Contains(domain.ActiveDeliveryStatuses, d.Status) {
			out[*d.DriverID]++
		}
	}
	return out, nil
}

// CompletionStats counts delivered and failed deliveries per last driver.
func (s *Store) CompletionStats(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.CompletionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]domain.CompletionStats, len(ids))
	for _, d := range s.deliveries {
		if d.LastDriverID == nil || !slices.Contains(ids, *d.LastDriverID) {
			continue
		}
		st := out[*d.LastDriverID]
		switch d.Status {
		case domain.DeliveryDelivered:
			st.Delivered++
		case domain.DeliveryFailed:
			st.Failed++
		}
		out[*d.LastDriverID] = st
	}
	return out, nil
}

func compareIDs(a, b uuid.UUID) int {
	switch {
	case a.String() < b.String():
		return -1
	case a.String() > b.String():
		return 1
	}
	return 0
}
