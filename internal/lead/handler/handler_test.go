package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"plotdesk/internal/event"
	"plotdesk/internal/lead"
	"plotdesk/internal/notify"
	"plotdesk/internal/platform/middleware"
	"plotdesk/pkg/testutil"
)

const adminToken = "test-admin-token"

func newLeadRouter(t *testing.T) (chi.Router, *lead.MemoryStore) {
	t.Helper()
	store := lead.NewMemoryStore()
	logger := slog.New(slog.DiscardHandler)
	service := lead.NewService(store, notify.NopSender{}, event.NopPublisher{}, logger, nil)
	h := New(service, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(adminToken, "", logger))
		h.RegisterAdmin(r)
	})
	return r, store
}

func TestHandleCreate(t *testing.T) {
	r, store := newLeadRouter(t)

	body, _ := json.Marshal(CreateRequest{
		Name:    "Asha Kulkarni",
		Email:   "asha@example.com",
		Message: "Interested in a corner plot",
		Project: "Sunrise Meadows",
	})
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	req = testutil.WithClientMetadata(req, "203.0.113.9", "test-agent/1.0")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got lead.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Name != "Asha Kulkarni" {
		t.Errorf("expected name echoed back, got %q", got.Name)
	}

	stored, err := store.ListRecent(req.Context(), 10)
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(stored))
	}
	if stored[0].ClientIP != "203.0.113.9" {
		t.Errorf("expected client ip recorded, got %q", stored[0].ClientIP)
	}
}

func TestHandleCreateInvalid(t *testing.T) {
	r, _ := newLeadRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.example"}`},
		{"no contact channel", `{"name":"Asha"}`},
		{"unparsable body", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleListRequiresAdminToken(t *testing.T) {
	r, _ := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong token, got %d", rec.Code)
	}
}

func TestHandleList(t *testing.T) {
	r, store := newLeadRouter(t)

	for i, name := range []string{"First", "Second", "Third"} {
		l, err := lead.NewLead(name, "", "9820000000", "", "", "",
			time.Date(2026, 3, 1, 10, i, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("new lead: %v", err)
		}
		if err := store.Save(context.Background(), l); err != nil {
			t.Fatalf("save lead: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads?limit=2", nil)
	req.Header.Set("X-Admin-Token", adminToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Leads []lead.Lead `json:"leads"`
		Count int         `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Count != 2 {
		t.Fatalf("expected count 2, got %d", got.Count)
	}
	if got.Leads[0].Name != "Third" || got.Leads[1].Name != "Second" {
		t.Errorf("expected newest first, got %q then %q", got.Leads[0].Name, got.Leads[1].Name)
	}
}
