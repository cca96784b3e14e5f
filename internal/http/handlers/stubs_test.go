package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/service/delivery"
	"delivery-dispatch/internal/service/dispatch"
)

type stubDeliveryUsecase struct {
	createFn   func(ctx context.Context, in delivery.CreateInput, actor domain.Actor) (domain.Delivery, error)
	getFn      func(ctx context.Context, storeID, id uuid.UUID) (domain.Delivery, []domain.StatusLog, error)
	transFn    func(ctx context.Context, storeID, id uuid.UUID, target domain.DeliveryStatus, actor domain.Actor, f delivery.Fields) (domain.TransitionResult, error)
	driverFn   func(ctx context.Context, id uuid.UUID, target domain.DeliveryStatus, actor domain.Actor, f delivery.Fields) (domain.TransitionResult, error)
	providerFn func(ctx context.Context, storeID uuid.UUID, secret, trackingID string, target domain.DeliveryStatus, f delivery.Fields) (domain.TransitionResult, error)
}

func (s *stubDeliveryUsecase) Create(ctx context.Context, in delivery.CreateInput, actor domain.Actor) (domain.Delivery, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in, actor)
}

func (s *stubDeliveryUsecase) Get(ctx context.Context, storeID, id uuid.UUID) (domain.Delivery, []domain.StatusLog, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, storeID, id)
}

func (s *stubDeliveryUsecase) Transition(
	ctx context.Context,
	storeID, id uuid.UUID,
	target domain.DeliveryStatus,
	actor domain.Actor,
	f delivery.Fields,
) (domain.TransitionResult, error) {
	if s.transFn == nil {
		panic("Transition not expected in this test")
	}
	return s.transFn(ctx, storeID, id, target, actor, f)
}

func (s *stubDeliveryUsecase) DriverTransition(
	ctx context.Context,
	id uuid.UUID,
	target domain.DeliveryStatus,
	actor domain.Actor,
	f delivery.Fields,
) (domain.TransitionResult, error) {
	if s.driverFn == nil {
		panic("DriverTransition not expected in this test")
	}
	return s.driverFn(ctx, id, target, actor, f)
}

func (s *stubDeliveryUsecase) ProviderTransition(
	ctx context.Context,
	storeID uuid.UUID,
	secret, trackingID string,
	target domain.DeliveryStatus,
	f delivery.Fields,
) (domain.TransitionResult, error) {
	if s.providerFn == nil {
		panic("ProviderTransition not expected in this test")
	}
	return s.providerFn(ctx, storeID, secret, trackingID, target, f)
}

type stubDispatch struct {
	fn func(ctx context.Context, storeID, id uuid.UUID) (dispatch.Outcome, error)
}

func (s stubDispatch) Dispatch(ctx context.Context, storeID, id uuid.UUID) (dispatch.Outcome, error) {
	return s.fn(ctx, storeID, id)
}

type stubPool struct {
	fn func(ctx context.Context, storeID uuid.UUID) ([]domain.DriverCandidate, error)
}

func (s stubPool) Resolve(ctx context.Context, storeID uuid.UUID) ([]domain.DriverCandidate, error) {
	return s.fn(ctx, storeID)
}

// withParams attaches chi URL params as the router would.
func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asStaff(r *http.Request, storeID uuid.UUID) *http.Request {
	id := middleware.Identity{Subject: "u-1", Role: middleware.RoleStaff, StoreID: storeID, Email: "ops@store.mn"}
	return r.WithContext(middleware.WithIdentity(r.Context(), id))
}

func asDriver(r *http.Request, driverID uuid.UUID) *http.Request {
	id := middleware.Identity{Subject: driverID.String(), Role: middleware.RoleDriver, Name: "Бат"}
	return r.WithContext(middleware.WithIdentity(r.Context(), id))
}
