package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"plotdesk/internal/lead"
	"plotdesk/pkg/platform/httputil"
	"plotdesk/pkg/requestcontext"
)

// Service defines the interface for lead operations.
type Service interface {
	Create(ctx context.Context, req lead.CreateRequest) (*lead.Lead, error)
	ListRecent(ctx context.Context, limit int) ([]*lead.Lead, error)
}

// Handler wires lead endpoints to the lead service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lead handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public lead endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Post("/leads", h.HandleCreate)
}

// RegisterAdmin mounts the back-office listing; the caller wraps the router
// in the admin-token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/leads", h.HandleList)
}

// CreateRequest is the contact form payload.
type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Project string `json:"project"`
	Source  string `json:"source"`
}

// HandleCreate handles POST /leads requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.Decode[CreateRequest](w, r)
	if !ok {
		return
	}

	l, err := h.service.Create(ctx, lead.CreateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Project: req.Project,
		Source:  req.Source,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "lead capture failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "lead captured",
		"request_id", requestID,
		"lead_id", l.ID,
		"project", l.Project,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, l)
}

// HandleList handles GET /admin/leads requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	leads, err := h.service.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list leads",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"leads": leads,
		"count": len(leads),
	})
}
