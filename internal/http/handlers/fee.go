package handlers

import (
	"net/http"
	"strings"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/fee"
)

// FeeHandler quotes the zone fee of an address.
type FeeHandler struct {
	estimate feeEstimator
	logger   logx.Logger
}

// NewFeeHandler creates a FeeHandler backed by fee.Estimate.
func NewFeeHandler(logger logx.Logger) *FeeHandler {
	return &FeeHandler{estimate: fee.Estimate, logger: logger}
}

// Quote handles GET /delivery-fee?address=...
// @Summary Delivery fee
// @Tags fees
// @Produce json
// @Param address query string true "Delivery address"
// @Success 200 {object} fee.Quote
// @Failure 400 {object} ErrorResponse "address is required"
// @Router /delivery-fee [get]
func (h *FeeHandler) Quote(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "address is required")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, h.estimate(address))
}
