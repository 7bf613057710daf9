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

// Package recommender matches soil samples against the crop catalog and
// assembles the advisory report for every suitable crop.
//
// # Matching
//
// Engine.Recommend checks each catalog entry in order and keeps the crops
// whose pH and moisture ranges contain the sample (bounds inclusive) and
// whose minimum N, P and K levels the sample meets. The result follows
// catalog order and is an empty, non-nil slice when nothing matches.
//
//	engine := recommender.NewEngine(catalog)
//	crops := engine.GetRecommendation(6.5, 40, soil.NewNutrientProfile(90, 70, 50))
//	// [Wheat Maize Soybean Cotton Barley Peanut]
//
// # Reports
//
// Builder wraps the engine and produces header-stamped payloads:
//
//	b := recommender.NewBuilder(recommender.WithVersion(version))
//	rec, err := b.Build(ctx, sample)
//
// Each recommended crop carries its pest control, rotation and irrigation
// text. Crops missing from an advisory table get the fallback strings
// "No data available", "No rotation plan available" and
// "No irrigation schedule available". An empty result carries
// EmptyMessage instead.
//
// # HTTP
//
// Builder exposes three handlers for pkg/server:
//
//	GET  /v1/recommendations?ph=6.5&moisture=40&nitrogen=90&phosphorus=70&potassium=50
//	POST /v1/recommendations   (JSON or YAML soil sample body)
//	GET  /v1/crops
//	GET  /v1/advisories?crop=wheat
//
// Missing or non-numeric readings yield 400 INVALID_REQUEST. Input ranges
// are not validated beyond parsing.
package recommender
