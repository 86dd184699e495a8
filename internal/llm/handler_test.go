package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/juliusphilipponce/menu-miner/internal/menu"
)

type stubExtractor struct {
	items  []menu.Item
	err    error
	called bool
}

func (s *stubExtractor) ExtractMenu(ctx context.Context, img Image) ([]menu.Item, error) {
	s.called = true
	return s.items, s.err
}

func analyzeRouter(e Extractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/analyze-menu", NewHandler(e).AnalyzeMenu)
	return r
}

func postAnalyze(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-menu", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeMenuSuccess(t *testing.T) {
	stub := &stubExtractor{items: []menu.Item{{Name: "Burger", Price: "$9"}}}
	r := analyzeRouter(stub)

	w := postAnalyze(r, map[string]string{
		"imageData": base64.StdEncoding.EncodeToString([]byte("jpeg bytes")),
		"mimeType":  "image/jpeg",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []menu.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Burger" {
		t.Errorf("unexpected items: %+v", resp.Items)
	}
}

func TestAnalyzeMenuMissingFields(t *testing.T) {
	stub := &stubExtractor{}
	r := analyzeRouter(stub)

	w := postAnalyze(r, map[string]string{"mimeType": "image/jpeg"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.called {
		t.Error("extractor must not be called for bad input")
	}
}

func TestAnalyzeMenuRejectsDisallowedMime(t *testing.T) {
	stub := &stubExtractor{}
	r := analyzeRouter(stub)

	w := postAnalyze(r, map[string]string{
		"imageData": base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		"mimeType":  "application/pdf",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.called {
		t.Error("extractor must not be called for a rejected file")
	}
}

func TestAnalyzeMenuExtractionFailure(t *testing.T) {
	stub := &stubExtractor{err: errors.New("gemini api error (status 500)")}
	r := analyzeRouter(stub)

	w := postAnalyze(r, map[string]string{
		"imageData": base64.StdEncoding.EncodeToString([]byte("jpeg bytes")),
		"mimeType":  "image/jpeg",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
