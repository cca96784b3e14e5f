package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/logx"
)

// DeliveryHandler serves the store dashboard delivery endpoints.
type DeliveryHandler struct {
	usecase  deliveryUsecase
	dispatch dispatchUsecase
	logger   logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase, dispatch dispatchUsecase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, dispatch: dispatch, logger: logger}
}

// Create handles POST /stores/{storeID}/deliveries.
// @Summary Create delivery
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body createDeliveryRequest true "Delivery"
// @Success 201 {object} deliveryDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 403 {object} ErrorResponse "driver not in pool"
// @Router /stores/{storeID}/deliveries [post]
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, actor, ok := h.staffScope(w, r)
	if !ok {
		return
	}
	var req createDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in, err := req.toInput(storeID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	d, err := h.usecase.Create(r.Context(), in, actor)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, toDeliveryDTO(d))
}

// Get handles GET /stores/{storeID}/deliveries/{id}.
func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, _, ok := h.staffScope(w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, logs, err := h.usecase.Get(r.Context(), storeID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryDetailsResponse{
		Delivery: toDeliveryDTO(d),
		History:  toStatusLogDTOs(logs),
	})
}

// Dispatch handles POST /stores/{storeID}/deliveries/{id}/dispatch.
// @Summary Auto-assign a pending delivery
// @Tags deliveries
// @Produce json
// @Success 200 {object} dispatchResponse
// @Failure 404 {object} ErrorResponse "delivery not found"
// @Failure 409 {object} ErrorResponse "delivery is not pending"
// @Router /stores/{storeID}/deliveries/{id}/dispatch [post]
func (h *DeliveryHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	storeID, _, ok := h.staffScope(w, r)
	if !ok {
		return
	}
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.dispatch.Dispatch(r.Context(), storeID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	resp := dispatchResponse{
		Outcome:    out.Label(),
		Assignment: out.Result,
		Target:     string(out.Source),
	}
	if out.Delivery != nil {
		d := toDeliveryDTO(*out.Delivery)
		resp.Delivery = &d
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// UpdateStatus handles PATCH /stores/{storeID}/deliveries/{id}/status.
// @Summary Change delivery status
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body statusRequest true "Target status"
// @Success 200 {object} transitionResponse
// @Failure 409 {object} transitionErrorResponse "transition not allowed from the current status"
// @Failure 422 {object} ErrorResponse "failure reason is required"
// @Router /stores/{storeID}/deliveries/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	storeID, actor, ok := h.staffScope(w, r)
	if !ok {
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

	res, err := h.usecase.Transition(r.Context(), storeID, id, domain.DeliveryStatus(req.Status), actor, req.toFields())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toTransitionResponse(res))
}

func (h *DeliveryHandler) staffScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Actor, bool) {
	storeID, err := uuidFromURL(r, "storeID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return uuid.Nil, domain.Actor{}, false
	}
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, domain.Actor{}, false
	}
	return storeID, id.Actor(), true
}
