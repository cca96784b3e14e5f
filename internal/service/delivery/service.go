// Package delivery is the delivery status state machine: the only writer of delivery status,
// driver operational status and the status log.
package delivery

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/deliverytx"
	"delivery-dispatch/internal/service/fee"
)

// DefaultFailureReason is recorded when a dispatcher marks a delivery failed without a reason.
const DefaultFailureReason = "no reason given"

// Fields are the optional updates accepted with a transition.
type Fields struct {
	DriverID      *uuid.UUID
	FailureReason *string
	ProofPhotoURL *string
	Notes         *string
	Location      *domain.Point
}

// CreateInput describes a new delivery.
type CreateInput struct {
	StoreID             uuid.UUID
	OrderID             *uuid.UUID
	DriverID            *uuid.UUID
	Type                domain.DeliveryType
	ProviderTrackingID  *string
	PickupAddress       string
	DeliveryAddress     string
	DeliveryLocation    *domain.Point
	CustomerName        string
	CustomerPhone       string
	Fee                 *decimal.Decimal
	RequiredVehicleType *domain.VehicleType
	ScheduledDate       *time.Time
	ScheduledTimeSlot   string
	Notes               string
	EstimatedDelivery   *time.Time
}

// Service - delivery status state machine.
type Service struct {
	repo             Repository
	drivers          DriverDirectory
	settings         SettingsProvider
	notifier         Notifier
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() uuid.UUID
}

// Deps groups the collaborators of Service.
type Deps struct {
	Repo        Repository
	Drivers     DriverDirectory
	Settings    SettingsProvider
	Notifier    Notifier
	Transitions *prometheus.CounterVec
	Logger      logx.Logger
}

// NewService creates a new delivery Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             d.Repo,
		drivers:          d.Drivers,
		settings:         d.Settings,
		notifier:         d.Notifier,
		transitions:      d.Transitions,
		operationTimeout: timeout,
		logger:           d.Logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.New,
	}
}

// WithClock overrides the service clock; used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get returns a store's delivery with its status history.
func (s *Service) Get(ctx context.Context, storeID, id uuid.UUID) (domain.Delivery, []domain.StatusLog, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetDelivery(ctx, storeID, id)
	if err != nil {
		return domain.Delivery{}, nil, err
	}
	if d == nil {
		return domain.Delivery{}, nil, apperr.ErrDeliveryNotFound
	}
	logs, err := s.repo.ListStatusLogs(ctx, id)
	if err != nil {
		return domain.Delivery{}, nil, err
	}
	return *d, logs, nil
}

// Create inserts a pending delivery, or an assigned one when a driver is supplied.
func (s *Service) Create(ctx context.Context, in CreateInput, actor domain.Actor) (domain.Delivery, error) {
	if err := validateCreate(&in); err != nil {
		return domain.Delivery{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if in.DriverID != nil {
		if err := s.checkEligible(ctx, in.StoreID, *in.DriverID); err != nil {
			return domain.Delivery{}, err
		}
	}

	now := s.now()
	id := s.newID()
	d := domain.Delivery{
		ID:                    id,
		StoreID:               in.StoreID,
		OrderID:               in.OrderID,
		DeliveryNumber:        deliveryNumber(id, now),
		Status:                domain.DeliveryPending,
		Type:                  in.Type,
		ProviderTrackingID:    in.ProviderTrackingID,
		PickupAddress:         in.PickupAddress,
		DeliveryAddress:       in.DeliveryAddress,
		DeliveryLocation:      in.DeliveryLocation,
		CustomerName:          in.CustomerName,
		CustomerPhone:         in.CustomerPhone,
		RequiredVehicleType:   in.RequiredVehicleType,
		ScheduledDate:         in.ScheduledDate,
		ScheduledTimeSlot:     in.ScheduledTimeSlot,
		Notes:                 in.Notes,
		EstimatedDeliveryTime: in.EstimatedDelivery,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if in.Fee != nil {
		d.Fee = *in.Fee
	} else {
		d.Fee = fee.Estimate(in.DeliveryAddress).Fee
	}
	if in.DriverID != nil {
		d.Status = domain.DeliveryAssigned
		d.DriverID = in.DriverID
		d.LastDriverID = in.DriverID
	}

	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		if err := tx.InsertDelivery(ctx, &d); err != nil {
			return err
		}
		log := &domain.StatusLog{DeliveryID: d.ID, Status: d.Status, Actor: actor.Label, Notes: "created", CreatedAt: now}
		if err := tx.InsertStatusLog(ctx, log); err != nil {
			return err
		}
		if d.DriverID != nil {
			return tx.SetDriverOnDelivery(ctx, *d.DriverID)
		}
		return nil
	})
	if err != nil {
		return domain.Delivery{}, err
	}

	s.logger.Info("delivery created",
		logx.String("event", "delivery_created"),
		logx.Stringer("delivery_id", d.ID),
		logx.Stringer("store_id", d.StoreID),
		logx.String("status", string(d.Status)),
	)
	s.transitions.WithLabelValues(string(d.Status)).Inc()
	if d.Status == domain.DeliveryAssigned {
		s.notifier.Publish(domain.NewDeliveryEvent(domain.EventAssigned, d, now))
	}
	return d, nil
}

// Transition moves a store's delivery to target on behalf of actor.
func (s *Service) Transition(
	ctx context.Context,
	storeID, deliveryID uuid.UUID,
	target domain.DeliveryStatus,
	actor domain.Actor,
	f Fields,
) (domain.TransitionResult, error) {
	if err := validateTransition(target, actor, f); err != nil {
		return domain.TransitionResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if target == domain.DeliveryAssigned {
		if err := s.checkEligible(ctx, storeID, *f.DriverID); err != nil {
			return domain.TransitionResult{}, err
		}
	}
	return s.commit(ctx, storeID, deliveryID, target, actor, f)
}

// DriverTransition applies the driver table on behalf of the assigned driver.
func (s *Service) DriverTransition(
	ctx context.Context,
	deliveryID uuid.UUID,
	target domain.DeliveryStatus,
	actor domain.Actor,
	f Fields,
) (domain.TransitionResult, error) {
	if actor.Role != domain.RoleDriver || actor.DriverID == nil {
		return domain.TransitionResult{}, apperr.ErrForbidden
	}
	if err := validateTransition(target, actor, f); err != nil {
		return domain.TransitionResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if d == nil {
		return domain.TransitionResult{}, apperr.ErrDeliveryNotFound
	}
	if d.DriverID == nil || *d.DriverID != *actor.DriverID {
		return domain.TransitionResult{}, apperr.ErrNotAssignedDriver
	}
	return s.commit(ctx, d.StoreID, d.ID, target, actor, f)
}

// ProviderTransition applies a status reported by an external provider webhook.
func (s *Service) ProviderTransition(
	ctx context.Context,
	storeID uuid.UUID,
	secret, trackingID string,
	target domain.DeliveryStatus,
	f Fields,
) (domain.TransitionResult, error) {
	actor := domain.ProviderActor()
	if err := validateTransition(target, actor, f); err != nil {
		return domain.TransitionResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	st, err := s.settings.Get(ctx, storeID)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if st.WebhookSecret == "" || subtle.ConstantTimeCompare([]byte(st.WebhookSecret), []byte(secret)) != 1 {
		return domain.TransitionResult{}, apperr.ErrUnauthorized
	}
	// providers run their own fleet; assigned means the provider accepted the job
	f.DriverID = nil

	d, err := s.repo.GetByTrackingID(ctx, storeID, trackingID)
	if err != nil {
		return domain.TransitionResult{}, err
	}
	if d == nil {
		return domain.TransitionResult{}, apperr.ErrDeliveryNotFound
	}
	return s.commit(ctx, storeID, d.ID, target, actor, f)
}

// Commit applies an engine decision. The caller has already resolved the pool.
func (s *Service) Commit(
	ctx context.Context,
	storeID, deliveryID, driverID uuid.UUID,
	actor domain.Actor,
) (domain.TransitionResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.commit(ctx, storeID, deliveryID, domain.DeliveryAssigned, actor, Fields{DriverID: &driverID})
}

func (s *Service) commit(
	ctx context.Context,
	storeID, deliveryID uuid.UUID,
	target domain.DeliveryStatus,
	actor domain.Actor,
	f Fields,
) (domain.TransitionResult, error) {
	var res domain.TransitionResult

	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetDelivery(ctx, storeID, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrDeliveryNotFound
		}
		if !domain.CanTransition(actor.Role, d.Status, target) {
			return invalidTransition(d.Status, target, actor)
		}
		if actor.Role == domain.RoleDriver && (d.DriverID == nil || *d.DriverID != *actor.DriverID) {
			return apperr.ErrNotAssignedDriver
		}
		if err := checkDeliveryType(*d, target, actor, f); err != nil {
			return err
		}

		now := s.now()
		change := buildChange(*d, target, f, now)
		ok, err := tx.UpdateStatus(ctx, change)
		if err != nil {
			return err
		}
		if !ok {
			cur, err := tx.GetDelivery(ctx, storeID, deliveryID)
			if err != nil {
				return err
			}
			if cur == nil {
				return apperr.ErrDeliveryNotFound
			}
			return invalidTransition(cur.Status, target, actor)
		}

		log := domain.StatusLog{
			DeliveryID: d.ID,
			Status:     target,
			Actor:      actor.Label,
			Notes:      logNotes(change),
			Location:   f.Location,
			CreatedAt:  now,
		}
		if err := tx.InsertStatusLog(ctx, &log); err != nil {
			return err
		}

		if target == domain.DeliveryAssigned && change.DriverID != nil {
			if err := tx.SetDriverOnDelivery(ctx, *change.DriverID); err != nil {
				return err
			}
		}
		if target.Terminal() && d.DriverID != nil {
			if err := s.releaseIfIdle(ctx, tx, *d.DriverID, d.ID); err != nil {
				return err
			}
		}
		if target == domain.DeliveryDelivered && d.OrderID != nil {
			if err := tx.MarkOrderDelivered(ctx, d.StoreID, *d.OrderID); err != nil {
				return err
			}
		}

		res = domain.TransitionResult{Delivery: apply(*d, change), From: d.Status, Log: log}
		return nil
	})
	if err != nil {
		if apperr.IsInvalidTransition(err) {
			s.logger.Info("transition rejected",
				logx.String("event", "transition_rejected"),
				logx.Stringer("delivery_id", deliveryID),
				logx.Stringer("store_id", storeID),
				logx.Err(err),
			)
		}
		return domain.TransitionResult{}, err
	}

	s.transitions.WithLabelValues(string(target)).Inc()
	s.logger.Info("delivery status changed",
		logx.String("event", "delivery_transition"),
		logx.Stringer("delivery_id", deliveryID),
		logx.Stringer("store_id", storeID),
		logx.String("from", string(res.From)),
		logx.String("to", string(target)),
		logx.String("actor", actor.Label),
	)
	if name, ok := domain.EventFor(target); ok {
		s.notifier.Publish(domain.NewDeliveryEvent(name, res.Delivery, res.Log.CreatedAt))
	}
	return res, nil
}

func (s *Service) releaseIfIdle(ctx context.Context, tx deliverytx.Repository, driverID, deliveryID uuid.UUID) error {
	n, err := tx.CountActiveDeliveries(ctx, driverID, deliveryID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	released, err := tx.ReleaseDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if released {
		s.logger.Debug("driver released",
			logx.String("event", "driver_released"),
			logx.Stringer("driver_id", driverID),
		)
	}
	return nil
}

// checkEligible: the driver exists, is in the store pool and is not inactive. Capacity is not re-checked.
func (s *Service) checkEligible(ctx context.Context, storeID, driverID uuid.UUID) error {
	drv, err := s.drivers.GetDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if drv == nil {
		return apperr.ErrDriverNotFound
	}
	if !drv.Status.Operational() {
		return apperr.ErrNotEligible
	}
	if drv.StoreID == storeID {
		return nil
	}
	shared, err := s.drivers.SharedDriverIDs(ctx, storeID)
	if err != nil {
		return err
	}
	if !slices.Contains(shared, driverID) {
		return apperr.ErrNotEligible
	}
	return nil
}

func validateTransition(target domain.DeliveryStatus, actor domain.Actor, f Fields) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrInvalid, target)
	}
	if target == domain.DeliveryFailed && actor.Role == domain.RoleDriver && blank(f.FailureReason) {
		return apperr.ErrMissingFailureReason
	}
	if actor.Role == domain.RoleDriver && actor.DriverID == nil {
		return apperr.ErrForbidden
	}
	return nil
}

// checkDeliveryType keeps own-driver and provider deliveries on their own paths.
func checkDeliveryType(d domain.Delivery, target domain.DeliveryStatus, actor domain.Actor, f Fields) error {
	if actor.Role == domain.RoleProvider && d.Type != domain.DeliveryTypeProvider {
		return fmt.Errorf("%w: delivery %s is not handled by a provider", apperr.ErrInvalid, d.ID)
	}
	if d.Type == domain.DeliveryTypeProvider && f.DriverID != nil {
		return fmt.Errorf("%w: provider deliveries have no own driver", apperr.ErrInvalid)
	}
	if target == domain.DeliveryAssigned && d.RequiresDriver(target) && f.DriverID == nil {
		return fmt.Errorf("%w: driver_id is required to assign", apperr.ErrInvalid)
	}
	return nil
}

func validateCreate(in *CreateInput) error {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	if in.DeliveryAddress == "" {
		return fmt.Errorf("%w: delivery address is required", apperr.ErrInvalid)
	}
	if in.Type == "" {
		in.Type = domain.DeliveryTypeOwnDriver
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown delivery type %q", apperr.ErrInvalid, in.Type)
	}
	if in.Type == domain.DeliveryTypeProvider && blank(in.ProviderTrackingID) {
		return fmt.Errorf("%w: provider deliveries need a tracking id", apperr.ErrInvalid)
	}
	if in.Type == domain.DeliveryTypeProvider && in.DriverID != nil {
		return fmt.Errorf("%w: provider deliveries have no own driver", apperr.ErrInvalid)
	}
	if in.RequiredVehicleType != nil && !in.RequiredVehicleType.Valid() {
		return fmt.Errorf("%w: unknown vehicle type %q", apperr.ErrInvalid, *in.RequiredVehicleType)
	}
	if in.Fee != nil && in.Fee.IsNegative() {
		return fmt.Errorf("%w: fee must not be negative", apperr.ErrInvalid)
	}
	return nil
}

func buildChange(d domain.Delivery, target domain.DeliveryStatus, f Fields, now time.Time) domain.StatusChange {
	c := domain.StatusChange{
		DeliveryID:    d.ID,
		Expected:      d.Status,
		Target:        target,
		ProofPhotoURL: f.ProofPhotoURL,
		Notes:         f.Notes,
		At:            now,
	}
	switch target {
	case domain.DeliveryAssigned:
		c.DriverID = f.DriverID
	case domain.DeliveryDelivered:
		c.ActualDeliveryTime = &now
	case domain.DeliveryFailed:
		reason := DefaultFailureReason
		if !blank(f.FailureReason) {
			reason = strings.TrimSpace(*f.FailureReason)
		}
		c.FailureReason = &reason
		c.ClearDriver = true
	case domain.DeliveryCancelled:
		c.ClearDriver = true
	}
	return c
}

// apply mirrors the UPDATE in memory so callers get the committed row without a re-read.
func apply(d domain.Delivery, c domain.StatusChange) domain.Delivery {
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
	return d
}

func logNotes(c domain.StatusChange) string {
	if c.Notes != nil {
		return *c.Notes
	}
	if c.FailureReason != nil {
		return *c.FailureReason
	}
	return ""
}

func invalidTransition(from, to domain.DeliveryStatus, actor domain.Actor) error {
	return &apperr.InvalidTransitionError{From: string(from), To: string(to), Role: string(actor.Role)}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deliveryNumber(id uuid.UUID, at time.Time) string {
	return fmt.Sprintf("D-%s-%s", at.Format("20060102"), strings.ToUpper(id.String()[:6]))
}

// IsNotFound reports whether err is a missing delivery or driver.
func IsNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}
