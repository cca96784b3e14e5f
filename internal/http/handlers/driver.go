package handlers

import (
	"net/http"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/logx"
)

// DriverHandler serves the driver app.
type DriverHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a DriverHandler.
func NewDriverHandler(logger logx.Logger, uc deliveryUsecase) *DriverHandler {
	return &DriverHandler{usecase: uc, logger: logger}
}

// UpdateStatus handles PATCH /driver/deliveries/{id}/status. Only the assigned driver may call it.
func (h *DriverHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	if _, isDriver := ident.DriverID(); !isDriver {
		writeError(h.logger, w, r, http.StatusForbidden, "driver token required")
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.DriverID != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "drivers cannot reassign")
		return
	}

	res, err := h.usecase.DriverTransition(r.Context(), id, domain.DeliveryStatus(req.Status), ident.Actor(), req.toFields())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toTransitionResponse(res))
}
