package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/core/domain"
)

const requestIDHeader = "X-Request-ID"

type loggerKey struct{}

// requestID tags the request with an id, reusing the caller's when given,
// and attaches a logger carrying it.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		logger := h.logger.With(slog.String("request_id", id))
		ctx := context.WithValue(r.Context(), loggerKey{}, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	if l, ok := r.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return h.logger
}

// authenticate verifies every "Authorization: Bearer" header and records
// the signers as the identities that authorized the call. One invalid
// token rejects the request.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.Header.Values("Authorization")
		if len(values) == 0 || h.verifier == nil {
			next.ServeHTTP(w, r)
			return
		}
		ids := make([]domain.Address, 0, len(values))
		for _, v := range values {
			scheme, token, ok := strings.Cut(v, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				h.writeStatus(w, http.StatusUnauthorized, "Unauthorized", "bearer token expected")
				return
			}
			id, err := h.verifier.Verify(token)
			if err != nil {
				h.log(r).Debug("token rejected", slog.Any("error", err))
				h.writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
				return
			}
			ids = append(ids, id)
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentities(r.Context(), ids...)))
	})
}
