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

// Package crop holds the crop requirement catalog and its advisory tables.
//
// # Catalog
//
// The catalog is an ordered list of crops, each with an inclusive pH range,
// an inclusive moisture range (percent) and minimum NPK levels:
//
//	c, err := crop.Default(ctx)
//	req, ok := c.Requirement("Wheat")
//	req.IsSuitable(6.5, 40, soil.NewNutrientProfile(90, 70, 50)) // true
//
// The default catalog is compiled into the binary from data/catalog.yaml and
// parsed once per process. Its list order is the order recommendations are
// returned in: Wheat, Rice, Maize, Soybean, Cotton, Barley, Potato, Tomato,
// Carrot, Peanut.
//
// # Advisories
//
// Three tables keyed by crop name carry static advice: pests, the crop to
// rotate to, and an irrigation interval. Lookups never fail; a crop absent
// from a table resolves to a fixed fallback text:
//
//	c.PestControlSuggestion("Wheat")          // "Aphids, Armyworms"
//	c.CropRotationSuggestion("Unknown")       // "No rotation plan available"
//	c.IrrigationScheduleSuggestion("Unknown") // "No irrigation schedule available"
//
// # Consistency
//
// Advisory tables may omit catalog crops (a warning is logged at load) but
// may not reference crops the catalog does not define; such a catalog is
// rejected by NewCatalog and Parse.
package crop
