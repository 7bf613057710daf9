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
	"fmt"

	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// Requirement is the soil window a crop grows in: an inclusive pH range, an
// inclusive moisture range and minimum nutrient levels.
type Requirement struct {
	MinPH       float64              `json:"minPh" yaml:"minPh"`
	MaxPH       float64              `json:"maxPh" yaml:"maxPh"`
	MinMoisture int                  `json:"minMoisture" yaml:"minMoisture"`
	MaxMoisture int                  `json:"maxMoisture" yaml:"maxMoisture"`
	Required    soil.NutrientProfile `json:"nutrients" yaml:"nutrients"`
}

// IsSuitable reports whether the soil readings fall inside the pH and
// moisture ranges (both ends inclusive) and meet the nutrient minimums.
func (r Requirement) IsSuitable(ph float64, moisture int, nutrients soil.NutrientProfile) bool {
	return ph >= r.MinPH && ph <= r.MaxPH &&
		moisture >= r.MinMoisture && moisture <= r.MaxMoisture &&
		nutrients.IsSufficient(r.Required)
}

// Accepts is IsSuitable for a whole soil sample.
func (r Requirement) Accepts(s soil.Sample) bool {
	return r.IsSuitable(s.PH, s.Moisture, s.Nutrients)
}

// Validate checks that both ranges are well ordered.
func (r Requirement) Validate() error {
	if r.MinPH > r.MaxPH {
		return fmt.Errorf("minPh %g exceeds maxPh %g", r.MinPH, r.MaxPH)
	}
	if r.MinMoisture > r.MaxMoisture {
		return fmt.Errorf("minMoisture %d exceeds maxMoisture %d", r.MinMoisture, r.MaxMoisture)
	}
	return nil
}

// String renders the requirement in a compact single-line form.
func (r Requirement) String() string {
	return fmt.Sprintf("pH %.1f-%.1f, moisture %d-%d%%, npk >= %s",
		r.MinPH, r.MaxPH, r.MinMoisture, r.MaxMoisture, r.Required)
}
