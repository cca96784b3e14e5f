// Package dispatch runs the explicit, operator-triggered assignment of a pending delivery.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/logx"
)

// Dispatch outcomes used as metric labels.
const (
	OutcomeAssigned     = "assigned"
	OutcomeSuggested    = "suggested"
	OutcomeOutsideHours = "outside_hours"
	OutcomeNoCandidates = "no_candidates"
)

// Outcome is the engine result plus the committed delivery when a driver was assigned.
type Outcome struct {
	Result   domain.AssignmentResult
	Delivery *domain.Delivery
	Source   geo.Source
}

// Deps groups the collaborators of Service.
type Deps struct {
	Deliveries DeliveryStore
	Settings   SettingsProvider
	Pool       PoolResolver
	Locator    Locator
	Engine     Engine
	Committer  Committer

	// Lock and Capacity are optional; with both set a commit re-checks the driver cap under a lock.
	Lock      DriverLocker
	Capacity  CapacityCounter
	Decisions *prometheus.CounterVec
	Logger    logx.Logger
}

// Service - dispatch orchestrator.
type Service struct {
	d       Deps
	timeout time.Duration
}

// NewService creates a dispatch Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{d: d, timeout: timeout}
}

// Dispatch assigns a pending delivery in auto mode. The engine result is returned even when
// nothing was committed.
func (s *Service) Dispatch(ctx context.Context, storeID, deliveryID uuid.UUID) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d, err := s.d.Deliveries.GetDelivery(ctx, storeID, deliveryID)
	if err != nil {
		return Outcome{}, err
	}
	if d == nil {
		return Outcome{}, apperr.ErrDeliveryNotFound
	}
	if d.Type != domain.DeliveryTypeOwnDriver {
		return Outcome{}, fmt.Errorf("%w: %s deliveries are not dispatched to store drivers", apperr.ErrInvalid, d.Type)
	}
	if d.Status != domain.DeliveryPending {
		return Outcome{}, apperr.ErrNotPending
	}

	st, err := s.d.Settings.Get(ctx, storeID)
	if err != nil {
		return Outcome{}, err
	}
	rules := st.Rules
	rules.Mode = domain.ModeAuto

	candidates, err := s.d.Pool.Resolve(ctx, storeID)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve pool: %w", err)
	}

	loc, src := s.d.Locator.Locate(ctx, *d)
	target := domain.AssignTarget{
		DeliveryID:      d.ID,
		Location:        loc,
		RequiredVehicle: RequiredVehicle(*d),
	}
	res := s.d.Engine.Assign(target, candidates, rules)

	if err := s.d.Deliveries.SaveAssignment(ctx, storeID, d.ID, res.Snapshot()); err != nil {
		return Outcome{}, fmt.Errorf("save assignment: %w", err)
	}

	out := Outcome{Result: res, Source: src}
	if res.RecommendedDriverID == nil {
		s.record(outcomeOf(res), d, res, src)
		return out, nil
	}

	committed, err := s.commit(ctx, storeID, d.ID, *res.RecommendedDriverID, rules.MaxConcurrentDeliveries, res.Method)
	if err != nil {
		s.d.Logger.Warn("dispatch commit failed",
			logx.String("event", "dispatch_commit_failed"),
			logx.Stringer("delivery_id", d.ID),
			logx.Stringer("store_id", storeID),
			logx.Stringer("driver_id", *res.RecommendedDriverID),
			logx.Err(err),
		)
		return Outcome{}, err
	}
	out.Delivery = &committed
	s.record(OutcomeAssigned, d, res, src)
	return out, nil
}

func (s *Service) commit(ctx context.Context, storeID, deliveryID, driverID uuid.UUID, maxConcurrent int, method string) (domain.Delivery, error) {
	if s.d.Lock != nil && s.d.Capacity != nil {
		unlock, err := s.d.Lock.Acquire(ctx, driverID)
		if err != nil {
			return domain.Delivery{}, err
		}
		defer unlock(context.WithoutCancel(ctx))

		counts, err := s.d.Capacity.ActiveCounts(ctx, []uuid.UUID{driverID})
		if err != nil {
			return domain.Delivery{}, err
		}
		if counts[driverID] >= maxConcurrent {
			return domain.Delivery{}, fmt.Errorf("%w: driver reached %d active deliveries", apperr.ErrConflict, maxConcurrent)
		}
	}

	tr, err := s.d.Committer.Commit(ctx, storeID, deliveryID, driverID, domain.EngineActor(method))
	if err != nil {
		return domain.Delivery{}, err
	}
	return tr.Delivery, nil
}

func (s *Service) record(outcome string, d *domain.Delivery, res domain.AssignmentResult, src geo.Source) {
	if s.d.Decisions != nil {
		s.d.Decisions.WithLabelValues(outcome).Inc()
	}
	fields := []logx.Field{
		logx.String("event", "dispatch_decision"),
		logx.Stringer("delivery_id", d.ID),
		logx.Stringer("store_id", d.StoreID),
		logx.String("outcome", outcome),
		logx.String("method", res.Method),
		logx.Int("confidence", res.Confidence),
		logx.Int("candidates", len(res.Candidates)),
		logx.String("location_source", string(src)),
	}
	if res.SuggestedDriverID != nil {
		fields = append(fields, logx.Stringer("driver_id", *res.SuggestedDriverID))
	}
	s.d.Logger.Info("dispatch decided", fields...)
}

// Label returns the outcome name used in metrics and API responses.
func (o Outcome) Label() string {
	return outcomeOf(o.Result)
}

func outcomeOf(res domain.AssignmentResult) string {
	switch {
	case res.RecommendedDriverID != nil:
		return OutcomeAssigned
	case res.Method == domain.MethodNoCandidates:
		return OutcomeNoCandidates
	case res.Method == domain.MethodOutsideHours:
		return OutcomeOutsideHours
	default:
		return OutcomeSuggested
	}
}

// RequiredVehicle is the explicit requirement, else a car for outer-zone addresses.
func RequiredVehicle(d domain.Delivery) *domain.VehicleType {
	if d.RequiredVehicleType != nil {
		v := *d.RequiredVehicleType
		return &v
	}
	if geo.ZoneOf(d.DeliveryAddress) == geo.ZoneOuter {
		v := domain.VehicleCar
		return &v
	}
	return nil
}
