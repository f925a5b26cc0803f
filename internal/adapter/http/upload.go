package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleCreateUploadURL issues a single-use upload URL for the caller. The
// URL expires after the configured TTL. A missing principal yields HTTP
// 401.
func (h *Handler) handleCreateUploadURL(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Uploads.CreateUploadURL(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, uploadURLResponse{UploadURL: u.URL, ExpiresAt: u.ExpiresAt})
}

// handleUpload stores the raw request body under the upload token. The
// token itself authorizes the request, so no principal is needed. Unknown,
// used or expired tokens result in HTTP 404, and empty or oversized bodies
// in HTTP 400. On success it responds with the storage id of the file.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)
	if h.svc.MaxUploadBytes > 0 {
		// one extra byte lets the use case see that the limit was exceeded
		body = io.LimitReader(r.Body, h.svc.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		h.writeBadRequest(w, "unreadable body")
		return
	}
	id, err := h.svc.Uploads.Upload(r.Context(), chi.URLParam(r, "token"), r.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, uploadResponse{StorageID: id})
}

// handleGetFile streams a stored file with its content type. Absent files
// and files owned by someone else result in HTTP 404.
func (h *Handler) handleGetFile(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Uploads.GetFile(r.Context(), chi.URLParam(r, "id"), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if f == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(f.Data); err != nil {
		h.logger.Warn("write file", slog.String("file_id", f.ID), slog.Any("error", err))
	}
}
