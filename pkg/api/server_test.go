package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/NVIDIA/crop-advisor/pkg/recommender"
	"github.com/NVIDIA/crop-advisor/pkg/server"
)

func TestConstants(t *testing.T) {
	if name != "cropadvisord" {
		t.Errorf("name = %q, want %q", name, "cropadvisord")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func newTestHandler() http.Handler {
	b := recommender.NewBuilder(recommender.WithVersion("test"))
	return server.New(
		server.WithName(name),
		server.WithVersion("test"),
		server.WithHandler(Routes(b)),
	).Handler()
}

func TestRoutes(t *testing.T) {
	routes := Routes(recommender.NewBuilder())
	for _, path := range []string{"/v1/recommendations", "/v1/crops", "/v1/advisories"} {
		if routes[path] == nil {
			t.Errorf("missing handler for %s", path)
		}
	}
}

func TestEndpoints(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"recommendations", http.MethodGet, "/v1/recommendations?ph=6.5&moisture=40&nitrogen=90&phosphorus=70&potassium=50", http.StatusOK},
		{"recommendations bad input", http.MethodGet, "/v1/recommendations?ph=abc", http.StatusBadRequest},
		{"recommendations wrong method", http.MethodPut, "/v1/recommendations", http.StatusMethodNotAllowed},
		{"crops", http.MethodGet, "/v1/crops", http.StatusOK},
		{"advisories", http.MethodGet, "/v1/advisories?crop=maize", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"root", http.MethodGet, "/", http.StatusOK},
		{"unknown", http.MethodGet, "/v2/anything", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d: %s", tt.method, tt.target, w.Code, tt.wantStatus, w.Body.String())
			}
			if w.Header().Get("X-Request-Id") == "" && tt.name != "health" {
				t.Error("expected X-Request-Id header")
			}
		})
	}
}

func TestConcurrentRecommendations(t *testing.T) {
	h := newTestHandler()

	var wg sync.WaitGroup
	errs := make(chan string, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
				"/v1/recommendations?ph=5.0&moisture=65&nitrogen=150&phosphorus=150&potassium=150", nil))
			if w.Code != http.StatusOK {
				errs <- w.Body.String()
				return
			}
			var rec recommender.Recommendation
			if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil || len(rec.Crops) != 1 || rec.Crops[0].Name != "Potato" {
				errs <- w.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected response: %s", e)
	}
}
