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

package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/crop-advisor/pkg/crop"
	"github.com/NVIDIA/crop-advisor/pkg/header"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// Builder assembles Recommendation and Advisory payloads. The zero value
// uses the embedded default catalog.
type Builder struct {
	Version string

	catalog *crop.Catalog
}

// Option is a functional option for configuring the Builder.
type Option func(*Builder)

// WithVersion stamps payload metadata with the tool version.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.Version = version
	}
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(catalog *crop.Catalog) Option {
	return func(b *Builder) {
		b.catalog = catalog
	}
}

// NewBuilder creates a Builder with the provided options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Catalog returns the catalog the builder matches against.
func (b *Builder) Catalog(ctx context.Context) (*crop.Catalog, error) {
	if b.catalog != nil {
		return b.catalog, nil
	}
	return crop.Default(ctx)
}

// Build matches sample against the catalog and attaches advisory text to
// each suitable crop.
func (b *Builder) Build(ctx context.Context, sample soil.Sample) (*Recommendation, error) {
	if err := ctx.Err(); err != nil {
		recommendationsTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("recommendation cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		recommendationDuration.Observe(time.Since(start).Seconds())
	}()

	catalog, err := b.Catalog(ctx)
	if err != nil {
		recommendationsTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("failed to load crop catalog: %w", err)
	}

	engine := NewEngine(catalog)
	names := engine.Recommend(sample)

	rec := &Recommendation{
		Sample: sample,
		Crops:  make([]CropAdvice, 0, len(names)),
	}
	rec.Init(header.KindRecommendation, b.Version)

	for _, name := range names {
		rec.Crops = append(rec.Crops, engine.Advise(name))
	}

	result := resultMatch
	if len(rec.Crops) == 0 {
		rec.Message = EmptyMessage
		result = resultEmpty
	}
	recommendationsTotal.WithLabelValues(result).Inc()

	slog.Debug("recommendation built",
		"sample", sample.String(),
		"crops", names,
	)

	return rec, nil
}

// Advise returns the advisory for a single crop. The name is canonicalised
// first so "wheat" finds "Wheat"; unknown crops get the fallback strings.
func (b *Builder) Advise(ctx context.Context, name string) (*Advisory, error) {
	catalog, err := b.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop catalog: %w", err)
	}

	canonical := crop.CanonicalName(name)
	a := &Advisory{
		CropAdvice: NewEngine(catalog).Advise(canonical),
		Known:      catalog.Has(canonical),
	}
	a.Init(header.KindCropAdvice, b.Version)

	if !a.Known {
		slog.Debug("advisory requested for unknown crop", "crop", name)
	}
	return a, nil
}

// Crops returns the catalog document stamped with the builder version.
func (b *Builder) Crops(ctx context.Context) (*crop.Document, error) {
	catalog, err := b.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop catalog: %w", err)
	}
	return catalog.Document(b.Version), nil
}
