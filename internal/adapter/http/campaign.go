package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"postcraft/internal/core/port"
)

// handleCreateCampaign creates a draft campaign for one of the caller's
// companies. Malformed JSON or a missing companyId result in HTTP 400, and
// a company the caller does not own in HTTP 404. On success it responds
// 201 with the id of the new campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	id, err := h.svc.Campaigns.CreateCampaign(r.Context(), principalFrom(r), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

// handleListCampaigns returns the caller's campaigns without their posts.
// An unauthenticated caller receives an empty list.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Campaigns.ListCampaigns(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, newCampaignResponse(c, nil))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleGetCampaign returns the campaign together with its posts. Posts are
// omitted until the campaign has been generated. Absent or foreign
// campaigns result in HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if view == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "campaign not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(view.Campaign, view.Posts))
}

// handleGenerate runs a generation for the campaign and returns the stored
// post set. The body is optional; omitted fields fall back to the layout
// "default" and the campaign's stored values. A completed campaign, or a
// generation already running on another instance, results in HTTP 409. A
// missing upstream credential is logged and reported as HTTP 500.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	ps, err := h.svc.Generation.GenerateAndAttach(r.Context(), principalFrom(r), chi.URLParam(r, "id"), port.GenerateInput{
		Layout:             req.Layout,
		Instructions:       req.Instructions,
		ProductDescription: req.ProductDescription,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPostSetResponse(ps))
}

// handleUpdateEditPrompt replaces the edit prompt of the post at {index}.
// A non-numeric or out-of-range index results in HTTP 400, a campaign
// without posts in HTTP 404. On success it responds 204.
func (h *Handler) handleUpdateEditPrompt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeBadRequest(w, "invalid post index")
		return
	}
	var req editPromptRequest
	if err = decodeJSON(r, &req, false); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	err = h.svc.Campaigns.UpdatePostEditPrompt(r.Context(), chi.URLParam(r, "id"), principalFrom(r), index, req.EditPrompt)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRecordSelection stores the selected post indices and completes the
// campaign. Indices that do not address a post result in HTTP 400, and a
// campaign that was never generated in HTTP 409. Repeating the request is
// harmless. On success it responds 204.
func (h *Handler) handleRecordSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	err := h.svc.Campaigns.RecordSelection(r.Context(), chi.URLParam(r, "id"), principalFrom(r), req.SelectedPostIndices)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExport writes the selected posts as plain text, in selection order
// and separated by blank lines. A campaign without a selection yields an
// empty body.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Campaigns.ExportSelected(r.Context(), chi.URLParam(r, "id"), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
