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

// Package soil defines the soil measurements crop-advisor reasons about:
// the NPK nutrient profile and a full sample of pH, moisture and nutrients.
//
// Values are plain integers and floats. Range checking is deliberately absent:
// a negative nitrogen reading still compares numerically, and parsing
// helpers only reject input that is not a number at all.
package soil
