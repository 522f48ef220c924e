package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"plotdesk/internal/project"
	"plotdesk/pkg/platform/httputil"
	"plotdesk/pkg/requestcontext"
)

// Service defines the interface for catalog reads.
type Service interface {
	List(ctx context.Context) ([]project.Summary, error)
	Get(ctx context.Context, slug string) (*project.Detail, error)
}

// Handler wires catalog endpoints to the project service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a project handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public catalog endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/projects", h.HandleList)
	r.Get("/projects/{slug}", h.HandleGet)
}

// HandleList handles GET /projects requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	summaries, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list projects",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "catalog listed",
		"request_id", requestcontext.RequestID(ctx),
		"projects", len(summaries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"projects": summaries,
		"count":    len(summaries),
	})
}

// HandleGet handles GET /projects/{slug} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.Get(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to load project",
			"request_id", requestcontext.RequestID(ctx),
			"slug", slug,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}
