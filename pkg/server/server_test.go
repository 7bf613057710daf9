// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"go.uber.org/goleak"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNew(t *testing.T) {
	s := New(
		WithName("test-server"),
		WithVersion("v1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/test": okHandler}),
	)

	if s.config.Name != "test-server" || s.config.Version != "v1.2.3" {
		t.Errorf("identity = %q/%q", s.config.Name, s.config.Version)
	}
	if _, ok := s.config.Handlers["/test"]; !ok {
		t.Error("expected /test handler to be registered")
	}
	if s.httpServer.ReadHeaderTimeout == 0 {
		t.Error("expected ReadHeaderTimeout to be set")
	}
	if s.IsReady() {
		t.Error("server should not be ready before serving")
	}
}

func TestWithConfig_KeepsHandlers(t *testing.T) {
	cfg := NewConfig()
	cfg.Port = 9999

	s := New(
		WithHandler(map[string]http.HandlerFunc{"/a": okHandler}),
		WithConfig(cfg),
	)

	if s.Addr() != ":9999" {
		t.Errorf("Addr() = %q", s.Addr())
	}
	if _, ok := s.config.Handlers["/a"]; !ok {
		t.Error("handler registered before WithConfig was dropped")
	}
}

func TestNewConfig_Env(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"defaults", "", "", 8080, 30 * time.Second},
		{"overrides", "9090", "45", 9090, 45 * time.Second},
		{"invalid ignored", "abc", "-1", 8080, 30 * time.Second},
		{"out of range port", "70000", "0", 8080, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPort, tt.port)
			t.Setenv(EnvShutdownTimeout, tt.shutdown)

			cfg := NewConfig()
			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.wantPort)
			}
			if cfg.ShutdownTimeout != tt.wantShutdown {
				t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, tt.wantShutdown)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d", w.Code)
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
		expectedState  string
	}{
		{"ready state", true, http.StatusOK, "ready"},
		{"not ready state", false, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if resp.Status != tt.expectedState {
				t.Errorf("status = %q, want %q", resp.Status, tt.expectedState)
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	s := New(
		WithName("crop"),
		WithVersion("v0.1.0"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/b": okHandler,
			"/v1/a": okHandler,
		}),
	)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp RootResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Name != "crop" || resp.Version != "v0.1.0" {
		t.Errorf("identity = %q/%q", resp.Name, resp.Version)
	}
	want := "/v1/a,/v1/b,/health,/ready,/metrics"
	if got := strings.Join(resp.Routes, ","); got != want {
		t.Errorf("routes = %s, want %s", got, want)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected request ID on root response")
	}
}

func TestUnknownRoute(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Code != cnserrors.ErrCodeNotFound {
		t.Errorf("code = %s", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/v1/x": okHandler}))

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/x", nil))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cropadvisor_http_requests_total") {
		t.Error("expected request counter in exposition")
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := NewConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	s := New(WithConfig(cfg), WithHandler(map[string]http.HandlerFunc{"/v1/ping": okHandler}))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}
	defer transport.CloseIdleConnections()

	url := fmt.Sprintf("http://%s/v1/ping", ln.Addr())
	var resp *http.Response
	for range 50 {
		resp, err = client.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	if s.IsReady() {
		t.Error("server should not be ready after shutdown")
	}
}

func TestServe_ClosedListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ln.Close()

	err = New().Serve(context.Background(), ln)
	if err == nil || !strings.Contains(err.Error(), "http server failed") {
		t.Errorf("Serve() error = %v", err)
	}
	if errors.Is(err, http.ErrServerClosed) {
		t.Error("closed listener should not look like a clean shutdown")
	}
}
