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
	"testing"

	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

func TestIsSuitable(t *testing.T) {
	// Wheat: pH 6.0-7.5, moisture 30-50, npk 80/60/40
	wheat := Requirement{
		MinPH: 6.0, MaxPH: 7.5,
		MinMoisture: 30, MaxMoisture: 50,
		Required: soil.NewNutrientProfile(80, 60, 40),
	}
	rich := soil.NewNutrientProfile(200, 200, 200)

	tests := []struct {
		name      string
		ph        float64
		moisture  int
		nutrients soil.NutrientProfile
		want      bool
	}{
		{"inside all ranges", 6.5, 40, rich, true},
		{"ph equals min", 6.0, 40, rich, true},
		{"ph equals max", 7.5, 40, rich, true},
		{"ph one unit below min", 5.0, 40, rich, false},
		{"ph one unit above max", 8.5, 40, rich, false},
		{"ph just below min", 5.99, 40, rich, false},
		{"moisture equals min", 6.5, 30, rich, true},
		{"moisture equals max", 6.5, 50, rich, true},
		{"moisture one below min", 6.5, 29, rich, false},
		{"moisture one above max", 6.5, 51, rich, false},
		{"nutrients exactly required", 6.5, 40, soil.NewNutrientProfile(80, 60, 40), true},
		{"potassium deficient", 6.5, 40, soil.NewNutrientProfile(80, 60, 39), false},
		{"everything out of range", 1, 99, soil.NutrientProfile{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wheat.IsSuitable(tt.ph, tt.moisture, tt.nutrients); got != tt.want {
				t.Errorf("IsSuitable(%v, %v, %s) = %v, want %v", tt.ph, tt.moisture, tt.nutrients, got, tt.want)
			}
			s := soil.NewSample(tt.ph, tt.moisture, tt.nutrients)
			if got := wheat.Accepts(s); got != tt.want {
				t.Errorf("Accepts(%s) = %v, want %v", s, got, tt.want)
			}
		})
	}
}

func TestRequirementValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Requirement
		wantErr bool
	}{
		{"well ordered", Requirement{MinPH: 5, MaxPH: 6, MinMoisture: 10, MaxMoisture: 20}, false},
		{"degenerate ranges", Requirement{MinPH: 6, MaxPH: 6, MinMoisture: 20, MaxMoisture: 20}, false},
		{"inverted ph", Requirement{MinPH: 7, MaxPH: 6, MinMoisture: 10, MaxMoisture: 20}, true},
		{"inverted moisture", Requirement{MinPH: 5, MaxPH: 6, MinMoisture: 30, MaxMoisture: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequirementString(t *testing.T) {
	r := Requirement{MinPH: 4.8, MaxPH: 5.5, MinMoisture: 60, MaxMoisture: 80,
		Required: soil.NewNutrientProfile(120, 100, 80)}
	want := "pH 4.8-5.5, moisture 60-80%, npk >= 120/100/80"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
