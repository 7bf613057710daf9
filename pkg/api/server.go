package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/crop-advisor/pkg/crop"
	"github.com/NVIDIA/crop-advisor/pkg/logging"
	"github.com/NVIDIA/crop-advisor/pkg/recommender"
	"github.com/NVIDIA/crop-advisor/pkg/server"
)

const (
	name           = "cropadvisord"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/crop-advisor/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes maps API paths to the builder's handlers.
func Routes(b *recommender.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recommendations": b.HandleRecommendations,
		"/v1/crops":           b.HandleCrops,
		"/v1/advisories":      b.HandleAdvisories,
	}
}

// Serve starts the API server and blocks until shutdown. The embedded
// catalog is loaded before listening so a broken build fails fast.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	catalog, err := crop.Default(ctx)
	if err != nil {
		slog.Error("failed to load crop catalog", "error", err)
		return err
	}
	slog.Info("crop catalog loaded", "crops", catalog.Len())

	b := recommender.NewBuilder(
		recommender.WithVersion(version),
		recommender.WithCatalog(catalog),
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(b)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
