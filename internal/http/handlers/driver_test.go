package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/delivery"
)

func TestDriverHandler_UpdateStatus(t *testing.T) {
	t.Parallel()

	driverID := uuid.New()
	deliveryID := uuid.New()

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "picked up", body: `{"status":"picked_up"}`, status: http.StatusOK},
		{name: "failed without reason", body: `{"status":"failed"}`, err: apperr.ErrMissingFailureReason, status: http.StatusUnprocessableEntity},
		{name: "not my delivery", body: `{"status":"picked_up"}`, err: apperr.ErrNotAssignedDriver, status: http.StatusForbidden},
		{name: "cannot cancel", body: `{"status":"cancelled"}`, err: &apperr.InvalidTransitionError{From: "assigned", To: "cancelled", Role: "driver"}, status: http.StatusConflict},
		{name: "cannot reassign", body: `{"status":"assigned","driver_id":"` + uuid.NewString() + `"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &stubDeliveryUsecase{
				driverFn: func(_ context.Context, id uuid.UUID, _ domain.DeliveryStatus, actor domain.Actor, _ delivery.Fields) (domain.TransitionResult, error) {
					require.Equal(t, deliveryID, id)
					require.Equal(t, domain.RoleDriver, actor.Role)
					require.Equal(t, driverID, *actor.DriverID)
					require.Equal(t, "Бат", actor.Label)
					return domain.TransitionResult{Delivery: domain.Delivery{ID: id, Status: domain.DeliveryPickedUp}}, tt.err
				},
			}
			r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			r = asDriver(withParams(r, "id", deliveryID.String()), driverID)
			rr := httptest.NewRecorder()

			NewDriverHandler(logx.Nop(), uc).UpdateStatus(rr, r)
			require.Equal(t, tt.status, rr.Code, rr.Body.String())
		})
	}
}

func TestDriverHandler_UpdateStatus_StaffTokenRejected(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"picked_up"}`))
	r = asStaff(withParams(r, "id", uuid.NewString()), uuid.New())
	rr := httptest.NewRecorder()

	NewDriverHandler(logx.Nop(), &stubDeliveryUsecase{}).UpdateStatus(rr, r)
	require.Equal(t, http.StatusForbidden, rr.Code)
}
