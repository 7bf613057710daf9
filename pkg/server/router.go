package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"github.com/NVIDIA/crop-advisor/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RootResponse describes the service at GET /.
type RootResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints skip rate limiting so probes are never throttled.
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(path, handler))
	}

	mux.HandleFunc("/", s.withMiddleware("/", s.handleDefault))

	return mux
}

// routes lists every mounted path, API routes first in sorted order.
func (s *Server) routes() []string {
	api := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		api = append(api, path)
	}
	sort.Strings(api)
	return append(api, "/health", "/ready", "/metrics")
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	slog.Debug("handling default route",
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	})
}
