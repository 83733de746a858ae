package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nova-fund/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body into v and validates its struct tags. Errors
// from address and amount decoding keep their ledger kind.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, domain.ErrInvalidAddress) || errors.Is(err, domain.ErrInvalidAmount) ||
			errors.Is(err, domain.ErrArithmeticOverflow) {
			return err
		}
		return fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err)
	}
	if err := h.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

var errBadRequest = errors.New("bad request")

func (h *Handler) writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadRequest) {
		h.writeStatus(w, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}
	h.writeStatus(w, statusOf(err), domain.Kind(err), err.Error())
}

func campaignIDParam(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid campaign id", errBadRequest)
	}
	return uint32(id), nil
}

func addressParam(r *http.Request, name string) (domain.Address, error) {
	return domain.ParseAddress(chi.URLParam(r, name))
}
