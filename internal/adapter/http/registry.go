package httpadapter

import (
	"net/http"

	"nova-fund/internal/core/domain"
)

type initializeRegistryRequest struct {
	Admin domain.Address `json:"admin" validate:"required"`
}

type createCampaignRequest struct {
	Creator domain.Address `json:"creator" validate:"required"`
	Title   string         `json:"title" validate:"title,max=1024"`
	Target  domain.Amount  `json:"target"`
}

type createCampaignResponse struct {
	ID uint32 `json:"id"`
}

type donateRequest struct {
	Donor  domain.Address `json:"donor" validate:"required"`
	Amount domain.Amount  `json:"amount"`
}

type campaignResponse struct {
	domain.Campaign
	Progress int64 `json:"progress"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{Campaign: c, Progress: c.Progress()}
}

func (h *Handler) handleRegistryInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRegistryRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.registry.Initialize(r.Context(), req.Admin); err != nil {
		h.writeError(w, r, "registry initialize", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	id, err := h.registry.CreateCampaign(r.Context(), req.Creator, req.Title, req.Target)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

func (h *Handler) handleRegistryDonate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	var req donateRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeDecodeError(w, err)
		return
	}
	if err := h.registry.Donate(r.Context(), id, req.Donor, req.Amount); err != nil {
		h.writeError(w, r, "registry donate", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	c, err := h.registry.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.registry.GetAllCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, newCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
