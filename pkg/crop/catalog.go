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

package crop

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"github.com/NVIDIA/crop-advisor/pkg/header"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/catalog.yaml
	catalogData []byte

	catalogOnce   sync.Once
	cachedCatalog *Catalog
	catalogErr    error
)

// Entry is a named crop requirement.
type Entry struct {
	Name        string      `json:"name" yaml:"name"`
	Requirement Requirement `json:"requirement" yaml:"requirement"`
}

// Document is the on-disk form of a catalog.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Crops      []Entry    `json:"crops" yaml:"crops"`
	Advisories Advisories `json:"advisories" yaml:"advisories"`
}

// Catalog is an ordered, read-only set of crop requirements plus the
// advisory tables keyed by crop name. It is safe for concurrent reads.
type Catalog struct {
	entries    []Entry
	index      map[string]int
	advisories Advisories
}

// NewCatalog validates entries and advisories and returns a Catalog that
// preserves the entry order. Names must be unique and non-empty, ranges must
// be well ordered, and every advisory key must name a catalog crop. A crop
// missing from an advisory table is allowed; its lookups fall back.
func NewCatalog(entries []Entry, advisories Advisories) (*Catalog, error) {
	c := &Catalog{
		entries:    make([]Entry, 0, len(entries)),
		index:      make(map[string]int, len(entries)),
		advisories: advisories.clone(),
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				"crop name cannot be empty", map[string]any{"position": i})
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				"duplicate crop name", map[string]any{"crop": e.Name})
		}
		if err := e.Requirement.Validate(); err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				"invalid crop requirement", err, map[string]any{"crop": e.Name})
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	if orphans := c.orphanAdvisories(); len(orphans) > 0 {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("advisory entries reference unknown crops: %s", strings.Join(orphans, ", ")),
			map[string]any{"crops": orphans})
	}

	return c, nil
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to parse catalog", err)
	}
	if doc.Kind != "" && doc.Kind != header.KindCatalog {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"unexpected document kind", map[string]any{"kind": doc.Kind})
	}

	c, err := NewCatalog(doc.Crops, doc.Advisories)
	if err != nil {
		return nil, err
	}

	for name, tables := range c.MissingAdvisories() {
		slog.Warn("crop has no advisory entry, lookups will fall back",
			"crop", name, "tables", tables)
	}

	return c, nil
}

// Default returns the catalog compiled into the binary. It is parsed once
// per process and shared.
func Default(_ context.Context) (*Catalog, error) {
	catalogOnce.Do(func() {
		catalogLoads.Inc()

		c, err := Parse(catalogData)
		if err != nil {
			catalogErr = cnserrors.Wrap(cnserrors.ErrCodeInternal, "embedded crop catalog is invalid", err)
			return
		}

		slog.Debug("crop catalog loaded", "crops", c.Len())
		cachedCatalog = c
	})

	if catalogErr != nil {
		return nil, catalogErr
	}
	if cachedCatalog == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInternal, "crop catalog not initialized")
	}
	return cachedCatalog, nil
}

// Len returns the number of crops in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the crops in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns crop names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Requirement returns the requirement of the named crop.
func (c *Catalog) Requirement(name string) (Requirement, bool) {
	i, ok := c.index[name]
	if !ok {
		return Requirement{}, false
	}
	return c.entries[i].Requirement, true
}

// Has reports whether the catalog contains the named crop.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Document returns the catalog in its serializable form.
func (c *Catalog) Document(version string) *Document {
	doc := &Document{
		Crops:      c.Entries(),
		Advisories: c.advisories.clone(),
	}
	doc.Init(header.KindCatalog, version)
	return doc
}

// MissingAdvisories maps each crop lacking an entry in one or more advisory
// tables to the names of those tables.
func (c *Catalog) MissingAdvisories() map[string][]string {
	missing := make(map[string][]string)
	for _, e := range c.entries {
		if _, ok := c.advisories.Pests[e.Name]; !ok {
			missing[e.Name] = append(missing[e.Name], "pests")
		}
		if _, ok := c.advisories.Rotation[e.Name]; !ok {
			missing[e.Name] = append(missing[e.Name], "rotation")
		}
		if _, ok := c.advisories.Irrigation[e.Name]; !ok {
			missing[e.Name] = append(missing[e.Name], "irrigation")
		}
	}
	return missing
}

func (c *Catalog) orphanAdvisories() []string {
	var orphans []string
	for name := range c.advisories.keys() {
		if !c.Has(name) {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	return orphans
}
