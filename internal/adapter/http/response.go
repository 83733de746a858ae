package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nova-fund/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusOf maps ledger error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrNotInitialized),
		errors.Is(err, domain.ErrCampaignExpired),
		errors.Is(err, domain.ErrDeadlineNotReached),
		errors.Is(err, domain.ErrTargetNotMet):
		return http.StatusConflict
	case errors.Is(err, domain.ErrArithmeticOverflow), errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports a failed call. Internal errors are logged and hidden
// from the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log(r).Error(op+" error", slog.Any("error", err))
		h.writeStatus(w, status, domain.Kind(err), "internal error")
		return
	}
	h.log(r).Debug(op+" rejected", slog.Any("error", err))
	h.writeStatus(w, status, domain.Kind(err), err.Error())
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, kind, msg string) {
	h.writeJSON(w, status, errorResponse{Error: kind, Message: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
