package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreateCompany creates a company for the caller. The request body is
// decoded into a companyRequest; malformed JSON results in HTTP 400. A
// missing principal yields HTTP 401 and an empty name HTTP 400. On success
// it responds 201 with the id of the new company.
func (h *Handler) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	id, err := h.svc.Companies.CreateCompany(r.Context(), principalFrom(r), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

// handleListCompanies returns the caller's companies, oldest first. An
// unauthenticated caller receives an empty list rather than an error.
func (h *Handler) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Companies.ListCompanies(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]companyResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, newCompanyResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleGetCompany returns a single company. It expects an {id} path
// parameter bound by the router. Unknown companies and companies owned by
// someone else both result in HTTP 404, so the existence of other
// users' records is not disclosed.
func (h *Handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Companies.GetCompany(r.Context(), chi.URLParam(r, "id"), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if c == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "company not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, newCompanyResponse(*c))
}
