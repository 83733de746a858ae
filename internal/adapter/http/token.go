package httpadapter

import (
	"net/http"

	"nova-fund/internal/core/domain"
)

type transferRequest struct {
	From   domain.Address `json:"from" validate:"required"`
	To     domain.Address `json:"to" validate:"required"`
	Amount domain.Amount  `json:"amount"`
}

type mintRequest struct {
	To     domain.Address `json:"to" validate:"required"`
	Amount domain.Amount  `json:"amount"`
}

type balanceResponse struct {
	Asset   domain.Address `json:"asset"`
	Holder  domain.Address `json:"holder"`
	Balance domain.Amount  `json:"balance"`
}

func (h *Handler) handleTokenBalance(w http.ResponseWriter, r *http.Request) {
	asset, err := addressParam(r, "asset")
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	holder, err := addressParam(r, "holder")
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	bal, err := h.tokens.Balance(r.Context(), asset, holder)
	if err != nil {
		h.writeError(w, r, "token balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{Asset: asset, Holder: holder, Balance: bal})
}

func (h *Handler) handleTokenTransfer(w http.ResponseWriter, r *http.Request) {
	asset, err := addressParam(r, "asset")
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	var req transferRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.tokens.Transfer(r.Context(), asset, req.From, req.To, req.Amount); err != nil {
		h.writeError(w, r, "token transfer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTokenMint(w http.ResponseWriter, r *http.Request) {
	asset, err := addressParam(r, "asset")
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	var req mintRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.tokens.Mint(r.Context(), asset, req.To, req.Amount); err != nil {
		h.writeError(w, r, "token mint", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
