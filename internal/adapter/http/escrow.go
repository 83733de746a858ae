package httpadapter

import (
	"net/http"

	"nova-fund/internal/core/domain"
)

type initializeEscrowRequest struct {
	Recipient domain.Address `json:"recipient" validate:"required"`
	Asset     domain.Address `json:"asset" validate:"required"`
	Deadline  uint64         `json:"deadline"`
	Target    domain.Amount  `json:"target"`
}

type withdrawResponse struct {
	Released domain.Amount `json:"released"`
}

func (h *Handler) handleEscrowInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeEscrowRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	err := h.escrow.Initialize(r.Context(), req.Recipient, req.Asset, req.Deadline, req.Target)
	if err != nil {
		h.writeError(w, r, "escrow initialize", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleEscrowDonate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.escrow.Donate(r.Context(), req.Donor, req.Amount); err != nil {
		h.writeError(w, r, "escrow donate", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleEscrowInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.escrow.GetCampaignInfo(r.Context())
	if err != nil {
		h.writeError(w, r, "escrow info", err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleEscrowWithdraw releases the contract balance. The recipient has to
// sign the request; the body is ignored.
func (h *Handler) handleEscrowWithdraw(w http.ResponseWriter, r *http.Request) {
	released, err := h.escrow.Withdraw(r.Context())
	if err != nil {
		h.writeError(w, r, "escrow withdraw", err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{Released: released})
}
