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

import "fmt"

// NutrientProfile holds nitrogen, phosphorus and potassium levels.
type NutrientProfile struct {
	Nitrogen   int `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus int `json:"phosphorus" yaml:"phosphorus"`
	Potassium  int `json:"potassium" yaml:"potassium"`
}

// NewNutrientProfile returns a profile with the given N, P and K levels.
func NewNutrientProfile(nitrogen, phosphorus, potassium int) NutrientProfile {
	return NutrientProfile{
		Nitrogen:   nitrogen,
		Phosphorus: phosphorus,
		Potassium:  potassium,
	}
}

// IsSufficient reports whether every dimension of p meets or exceeds the
// corresponding dimension of required. There is no partial credit.
func (p NutrientProfile) IsSufficient(required NutrientProfile) bool {
	return p.Nitrogen >= required.Nitrogen &&
		p.Phosphorus >= required.Phosphorus &&
		p.Potassium >= required.Potassium
}

// String renders the profile as N/P/K.
func (p NutrientProfile) String() string {
	return fmt.Sprintf("%d/%d/%d", p.Nitrogen, p.Phosphorus, p.Potassium)
}
