package handlers

import (
	"net/http"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// WebhookSecretHeader carries the per-store provider secret.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookHandler receives status reports from external delivery providers.
type WebhookHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(logger logx.Logger, uc deliveryUsecase) *WebhookHandler {
	return &WebhookHandler{usecase: uc, logger: logger}
}

// Provider handles POST /webhooks/provider/{storeID}.
// @Summary Provider status webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Store webhook secret"
// @Param request body providerWebhookRequest true "Status report"
// @Success 200 {object} transitionResponse
// @Failure 401 {object} ErrorResponse "bad secret"
// @Failure 404 {object} ErrorResponse "unknown tracking id"
// @Router /webhooks/provider/{storeID} [post]
func (h *WebhookHandler) Provider(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuidFromURL(r, "storeID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	secret := r.Header.Get(WebhookSecretHeader)
	if secret == "" {
		writeError(h.logger, w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req providerWebhookRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.ProviderTransition(r.Context(), storeID, secret, req.TrackingID, domain.DeliveryStatus(req.Status), req.toFields())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toTransitionResponse(res))
}
