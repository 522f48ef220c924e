package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"plotdesk/internal/project"
	"plotdesk/pkg/measure"
)

func newCatalogRouter(t *testing.T) (chi.Router, *project.MemoryStore) {
	t.Helper()
	store := project.NewMemoryStore()
	logger := slog.New(slog.DiscardHandler)
	h := New(project.NewService(store, logger), logger)

	r := chi.NewRouter()
	h.Register(r)
	return r, store
}

func seedProject(t *testing.T, store *project.MemoryStore, slug, name string, sqm float64) {
	t.Helper()
	area, err := measure.FromSquareMeters(sqm)
	if err != nil {
		t.Fatalf("build area: %v", err)
	}
	err = store.Save(context.Background(), &project.Project{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		Location:  "Pune",
		TotalArea: area,
		UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
}

func TestHandleList(t *testing.T) {
	r, store := newCatalogRouter(t)
	seedProject(t, store, "sunrise-meadows", "Sunrise Meadows", 50000)
	seedProject(t, store, "green-acres", "Green Acres", 5000)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Projects []project.Summary `json:"projects"`
		Count    int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Count != 2 {
		t.Fatalf("expected 2 projects, got %d", got.Count)
	}
	if got.Projects[0].Name != "Green Acres" {
		t.Errorf("expected name ordering, got %q first", got.Projects[0].Name)
	}
}

func TestHandleGet(t *testing.T) {
	r, store := newCatalogRouter(t)
	seedProject(t, store, "sunrise-meadows", "Sunrise Meadows", 50000)

	req := httptest.NewRequest(http.MethodGet, "/projects/sunrise-meadows", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got project.Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Slug != "sunrise-meadows" {
		t.Errorf("expected slug echoed back, got %q", got.Slug)
	}
	if got.TotalAreaText != "12.4 acres" {
		t.Errorf("expected display area, got %q", got.TotalAreaText)
	}
}

func TestHandleGetNotFound(t *testing.T) {
	r, _ := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/no-such-project", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body["error"] != "not_found" {
		t.Errorf("expected not_found error code, got %q", body["error"])
	}
}
