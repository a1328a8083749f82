package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/onkoai/oncodemo/internal/config"
	"github.com/onkoai/oncodemo/internal/platform/store"
)

func newHandlerContext(target string) (echo.Context, *httptest.ResponseRecorder, *Handler) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := &config.Config{}
	h := NewHandler(cfg, store.NewSeededStore(zerolog.Nop()))
	return c, rec, h
}

func TestConnectionStatus(t *testing.T) {
	c, rec, h := newHandlerContext("/api/v1/status/connection")
	if err := h.ConnectionStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data config.ConnectionInfo `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.IsDemoMode || resp.Data.Mode != "demo" || resp.Data.HasCredentials {
		t.Errorf("expected demo connection status, got %+v", resp.Data)
	}
}

func TestListTables(t *testing.T) {
	c, rec, h := newHandlerContext("/api/v1/admin/tables")
	if err := h.ListTables(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := map[string]bool{"patients": true, "tumor_markers": true, "ai_recommendations": true}
	if len(resp.Data) != len(want) {
		t.Fatalf("expected %d tables, got %v", len(want), resp.Data)
	}
	for _, name := range resp.Data {
		if !want[name] {
			t.Errorf("unexpected table %q", name)
		}
	}
}

func TestInspectTable(t *testing.T) {
	c, rec, h := newHandlerContext("/api/v1/admin/tables/patients")
	c.SetParamNames("name")
	c.SetParamValues("patients")

	if err := h.InspectTable(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 4 {
		t.Errorf("expected 4 patient rows, got %d", len(resp.Data))
	}
}

func TestInspectTable_Unknown(t *testing.T) {
	c, rec, h := newHandlerContext("/api/v1/admin/tables/appointments")
	c.SetParamNames("name")
	c.SetParamValues("appointments")

	if err := h.InspectTable(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown table, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty collection, got %s", rec.Body.String())
	}
}
