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
	"github.com/NVIDIA/crop-advisor/pkg/crop"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// Engine matches soil samples against a crop catalog.
type Engine struct {
	catalog *crop.Catalog
}

// NewEngine returns an Engine over catalog.
func NewEngine(catalog *crop.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Recommend returns, in catalog order, every crop whose requirement accepts
// the sample. The result is non-nil and empty when nothing matches.
func (e *Engine) Recommend(s soil.Sample) []string {
	matches := make([]string, 0)
	if e == nil || e.catalog == nil {
		return matches
	}
	for _, entry := range e.catalog.Entries() {
		if entry.Requirement.Accepts(s) {
			matches = append(matches, entry.Name)
		}
	}
	return matches
}

// GetRecommendation is Recommend taking the readings separately.
func (e *Engine) GetRecommendation(ph float64, moisture int, nutrients soil.NutrientProfile) []string {
	return e.Recommend(soil.NewSample(ph, moisture, nutrients))
}

// Advise returns the advisory text for name, with fallbacks for crops the
// catalog has no data for.
func (e *Engine) Advise(name string) CropAdvice {
	advice := CropAdvice{
		Name:        name,
		PestControl: crop.NoPestData,
		Rotation:    crop.NoRotationPlan,
		Irrigation:  crop.NoIrrigationSchedule,
	}
	if e == nil || e.catalog == nil {
		return advice
	}
	advice.PestControl = e.catalog.PestControlSuggestion(name)
	advice.Rotation = e.catalog.CropRotationSuggestion(name)
	advice.Irrigation = e.catalog.IrrigationScheduleSuggestion(name)
	return advice
}
