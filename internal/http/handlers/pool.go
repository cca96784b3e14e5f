package handlers

import (
	"net/http"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// PoolHandler lists a store's candidate drivers.
type PoolHandler struct {
	usecase poolUsecase
	logger  logx.Logger
}

// NewPoolHandler creates a PoolHandler.
func NewPoolHandler(logger logx.Logger, uc poolUsecase) *PoolHandler {
	return &PoolHandler{usecase: uc, logger: logger}
}

// List handles GET /stores/{storeID}/drivers/pool.
func (h *PoolHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuidFromURL(r, "storeID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	drivers, err := h.usecase.Resolve(r.Context(), storeID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if drivers == nil {
		drivers = []domain.DriverCandidate{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, poolResponse{StoreID: storeID, Drivers: drivers})
}
