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

import "strings"

// Fallback texts returned when a crop has no entry in an advisory table.
const (
	NoPestData           = "No data available"
	NoRotationPlan       = "No rotation plan available"
	NoIrrigationSchedule = "No irrigation schedule available"
)

// PestSeparator joins pest names into a single display string.
const PestSeparator = ", "

// Advisories holds the three static advisory tables keyed by crop name.
type Advisories struct {
	Pests      map[string][]string `json:"pests,omitempty" yaml:"pests,omitempty"`
	Rotation   map[string]string   `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Irrigation map[string]string   `json:"irrigation,omitempty" yaml:"irrigation,omitempty"`
}

// Pests returns a copy of the pest list for the crop.
func (c *Catalog) Pests(name string) ([]string, bool) {
	pests, ok := c.advisories.Pests[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(pests))
	copy(out, pests)
	return out, true
}

// Rotation returns the crop suggested to follow the named crop.
func (c *Catalog) Rotation(name string) (string, bool) {
	next, ok := c.advisories.Rotation[name]
	return next, ok
}

// Irrigation returns the irrigation interval text for the crop.
func (c *Catalog) Irrigation(name string) (string, bool) {
	text, ok := c.advisories.Irrigation[name]
	return text, ok
}

// PestControlSuggestion returns the crop's pests joined with ", ",
// or NoPestData when the crop has no entry.
func (c *Catalog) PestControlSuggestion(name string) string {
	pests, ok := c.advisories.Pests[name]
	if !ok {
		return NoPestData
	}
	return strings.Join(pests, PestSeparator)
}

// CropRotationSuggestion returns the next crop in rotation,
// or NoRotationPlan when the crop has no entry.
func (c *Catalog) CropRotationSuggestion(name string) string {
	if next, ok := c.Rotation(name); ok {
		return next
	}
	return NoRotationPlan
}

// IrrigationScheduleSuggestion returns the irrigation interval text,
// or NoIrrigationSchedule when the crop has no entry.
func (c *Catalog) IrrigationScheduleSuggestion(name string) string {
	if text, ok := c.Irrigation(name); ok {
		return text
	}
	return NoIrrigationSchedule
}

// keys maps every crop name referenced by an advisory table to the tables naming it.
func (a Advisories) keys() map[string][]string {
	refs := make(map[string][]string)
	for name := range a.Pests {
		refs[name] = append(refs[name], "pests")
	}
	for name := range a.Rotation {
		refs[name] = append(refs[name], "rotation")
	}
	for name := range a.Irrigation {
		refs[name] = append(refs[name], "irrigation")
	}
	return refs
}

func (a Advisories) clone() Advisories {
	out := Advisories{
		Pests:      make(map[string][]string, len(a.Pests)),
		Rotation:   make(map[string]string, len(a.Rotation)),
		Irrigation: make(map[string]string, len(a.Irrigation)),
	}
	for k, v := range a.Pests {
		out.Pests[k] = append([]string(nil), v...)
	}
	for k, v := range a.Rotation {
		out.Rotation[k] = v
	}
	for k, v := range a.Irrigation {
		out.Irrigation[k] = v
	}
	return out
}
