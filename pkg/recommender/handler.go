package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/crop-advisor/pkg/defaults"
	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"github.com/NVIDIA/crop-advisor/pkg/serializer"
	"github.com/NVIDIA/crop-advisor/pkg/server"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// ParamCrop names the crop for the advisories endpoint.
const ParamCrop = "crop"

var (
	// cacheTTL can be overridden in tests
	cacheTTL = defaults.RecommendationCacheTTL
)

// HandleRecommendations serves GET with query parameters and POST with a
// JSON or YAML soil sample body.
func (b *Builder) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendationHandlerTimeout)
	defer cancel()

	var sample soil.Sample
	var err error

	switch r.Method {
	case http.MethodGet:
		sample, err = ParseSampleFromRequest(r)
	case http.MethodPost:
		defer func() {
			if r.Body != nil {
				r.Body.Close()
			}
		}()
		sample, err = ParseSampleFromBody(r.Body, r.Header.Get("Content-Type"))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid soil sample", nil)
		return
	}

	slog.Debug("sample",
		"ph", sample.PH,
		"moisture", sample.Moisture,
		"nutrients", sample.Nutrients.String(),
	)

	rec, err := b.Build(ctx, sample)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build recommendation", nil)
		return
	}

	setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, rec)
}

// HandleCrops serves the catalog listing.
func (b *Builder) HandleCrops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CatalogHandlerTimeout)
	defer cancel()

	doc, err := b.Crops(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load crop catalog", nil)
		return
	}

	setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandleAdvisories serves the advisory text for ?crop=NAME. Unknown crops
// return 200 with the fallback strings.
func (b *Builder) HandleAdvisories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get(ParamCrop))
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Missing crop parameter", false, map[string]any{"parameter": ParamCrop})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CatalogHandlerTimeout)
	defer cancel()

	advisory, err := b.Advise(ctx, name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up advisory", nil)
		return
	}

	setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, advisory)
}

func setCacheHeader(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheTTL.Seconds())))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}
