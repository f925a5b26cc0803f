package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"postcraft/internal/core/port"
	"postcraft/internal/metrics"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Companies  port.CompanyUseCase
	Campaigns  port.CampaignUseCase
	Generation port.GenerationUseCase
	Uploads    port.UploadUseCase
	// MaxUploadBytes bounds how much of an upload body is read. Zero means
	// no bound at this layer.
	MaxUploadBytes int64
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every /api/v1 route runs with the principal taken from the X-User-Id
// header; the use cases decide what an absent principal may do.
type Handler struct {
	svc     Services
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. m may be nil, in
// which case /metrics serves an empty registry.
func NewHandler(svc Services, logger *slog.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(principalMiddleware)

		r.Post("/companies", h.handleCreateCompany)
		r.Get("/companies", h.handleListCompanies)
		r.Get("/companies/{id}", h.handleGetCompany)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Post("/generate", h.handleGenerate)
			r.Put("/posts/{index}/edit-prompt", h.handleUpdateEditPrompt)
			r.Put("/selection", h.handleRecordSelection)
			r.Get("/export", h.handleExport)
		})

		r.Post("/uploads", h.handleCreateUploadURL)
		r.Post("/uploads/{token}", h.handleUpload)
		r.Get("/files/{id}", h.handleGetFile)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports liveness. It does not touch the store.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
