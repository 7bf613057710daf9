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

package soil

import (
	"fmt"
	"strconv"
	"strings"
)

// Sample is one set of soil readings: pH, moisture percent and nutrients.
type Sample struct {
	PH        float64         `json:"ph" yaml:"ph"`
	Moisture  int             `json:"moisture" yaml:"moisture"`
	Nutrients NutrientProfile `json:"nutrients" yaml:"nutrients"`
}

// NewSample builds a Sample from its individual readings.
func NewSample(ph float64, moisture int, nutrients NutrientProfile) Sample {
	return Sample{
		PH:        ph,
		Moisture:  moisture,
		Nutrients: nutrients,
	}
}

// String renders the sample for logs and debugging.
func (s Sample) String() string {
	return fmt.Sprintf("pH=%g moisture=%d%% npk=%s", s.PH, s.Moisture, s.Nutrients)
}

// ParsePH parses a pH reading. Only the numeric form is checked.
func ParsePH(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("ph %q is not a number: %w", raw, err)
	}
	return v, nil
}

// ParseLevel parses an integer reading such as moisture percent or a nutrient level.
func ParseLevel(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", name, raw, err)
	}
	return v, nil
}
