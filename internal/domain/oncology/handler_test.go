package oncology

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/onkoai/oncodemo/internal/platform/store"
)

func newHandlerContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder, *Handler) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler(NewService(NewDemoRepo(store.NewSeededStore(zerolog.Nop()))))
	return c, rec, h
}

func TestListTumorMarkersHandler(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodGet, "/api/v1/patients/1/tumor-markers", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.ListTumorMarkers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []TumorMarker `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("expected 3 readings, got %d", len(resp.Data))
	}
}

func TestListTumorMarkersHandler_UnknownPatient(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodGet, "/api/v1/patients/999/tumor-markers", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.ListTumorMarkers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty data array, got %s", rec.Body.String())
	}
}

func TestGetRecommendationHandler(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodGet, "/api/v1/patients/2/recommendations", "")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.GetRecommendation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data Recommendation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Confidence != 0.88 {
		t.Errorf("expected confidence 0.88, got %v", resp.Data.Confidence)
	}
}

func TestGetRecommendationHandler_NotFound(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodGet, "/api/v1/patients/4/recommendations", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.GetRecommendation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestClassifyHandler(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodPost, "/api/v1/ai/classify",
		`{"text":"Рак желудка, T2, метастазы в печени"}`)

	if err := h.Classify(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Classification
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CancerType != "желудок" {
		t.Errorf("expected cancer type желудок, got %q", resp.CancerType)
	}
	if resp.Stage != "II" {
		t.Errorf("expected stage II, got %q", resp.Stage)
	}
	if !resp.ExtractedInfo.HasMetastasis {
		t.Error("expected metastasis flag")
	}
}

func TestClassifyHandler_MissingText(t *testing.T) {
	c, rec, h := newHandlerContext(http.MethodPost, "/api/v1/ai/classify", `{}`)
	if err := h.Classify(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
