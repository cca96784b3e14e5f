package handlers

import (
	"errors"
	"net/http"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/logx"
)

// transitionErrorResponse tells the client which status the delivery is really in.
type transitionErrorResponse struct {
	Error     string `json:"error"`
	Current   string `json:"current_status"`
	Requested string `json:"requested_status"`
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ite *apperr.InvalidTransitionError
	switch {
	case errors.As(err, &ite):
		writeJSON(logger, w, r, http.StatusConflict, transitionErrorResponse{
			Error:     "invalid status transition",
			Current:   ite.From,
			Requested: ite.To,
		})
	case errors.Is(err, apperr.ErrMissingFailureReason):
		writeError(logger, w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(logger, w, r, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, apperr.ErrForbidden):
		writeError(logger, w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, err.Error())
	default:
		logger.Error("unhandled service error",
			logx.String("event", "http_internal_error"),
			logx.String("request_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
