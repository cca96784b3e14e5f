package handlers

import (
	"context"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/delivery"
	"delivery-dispatch/internal/service/dispatch"
	"delivery-dispatch/internal/service/fee"
	"delivery-dispatch/internal/service/pool"
)

type deliveryUsecase interface {
	Create(ctx context.Context, in delivery.CreateInput, actor domain.Actor) (domain.Delivery, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (domain.Delivery, []domain.StatusLog, error)
	Transition(
		ctx context.Context,
		storeID, deliveryID uuid.UUID,
		target domain.DeliveryStatus,
		actor domain.Actor,
		f delivery.Fields,
	) (domain.TransitionResult, error)
	DriverTransition(
		ctx context.Context,
		deliveryID uuid.UUID,
		target domain.DeliveryStatus,
		actor domain.Actor,
		f delivery.Fields,
	) (domain.TransitionResult, error)
	ProviderTransition(
		ctx context.Context,
		storeID uuid.UUID,
		secret, trackingID string,
		target domain.DeliveryStatus,
		f delivery.Fields,
	) (domain.TransitionResult, error)
}

// NewDeliveryUsecase wires the delivery Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type dispatchUsecase interface {
	Dispatch(ctx context.Context, storeID, deliveryID uuid.UUID) (dispatch.Outcome, error)
}

// NewDispatchUsecase wires the dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type poolUsecase interface {
	Resolve(ctx context.Context, storeID uuid.UUID) ([]domain.DriverCandidate, error)
}

// NewPoolUsecase wires the pool Resolver into a poolUsecase.
func NewPoolUsecase(r *pool.Resolver) poolUsecase {
	return r
}

type feeEstimator func(address string) fee.Quote
