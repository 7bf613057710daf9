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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NVIDIA/crop-advisor/pkg/defaults"
	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"github.com/NVIDIA/crop-advisor/pkg/serializer"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// Query parameter names accepted by the recommendations endpoint.
const (
	ParamPH         = "ph"
	ParamMoisture   = "moisture"
	ParamNitrogen   = "nitrogen"
	ParamPhosphorus = "phosphorus"
	ParamPotassium  = "potassium"
)

// rawSample distinguishes absent readings from zero readings.
type rawSample struct {
	PH        *float64      `json:"ph" yaml:"ph"`
	Moisture  *int          `json:"moisture" yaml:"moisture"`
	Nutrients *rawNutrients `json:"nutrients" yaml:"nutrients"`
}

type rawNutrients struct {
	Nitrogen   *int `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus *int `json:"phosphorus" yaml:"phosphorus"`
	Potassium  *int `json:"potassium" yaml:"potassium"`
}

func (r *rawSample) toSample() (soil.Sample, error) {
	var missing []string
	if r.PH == nil {
		missing = append(missing, ParamPH)
	}
	if r.Moisture == nil {
		missing = append(missing, ParamMoisture)
	}
	n := r.Nutrients
	if n == nil {
		n = &rawNutrients{}
	}
	if n.Nitrogen == nil {
		missing = append(missing, "nutrients."+ParamNitrogen)
	}
	if n.Phosphorus == nil {
		missing = append(missing, "nutrients."+ParamPhosphorus)
	}
	if n.Potassium == nil {
		missing = append(missing, "nutrients."+ParamPotassium)
	}
	if len(missing) > 0 {
		return soil.Sample{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"soil sample is missing readings: "+strings.Join(missing, ", "),
			map[string]any{"missing": missing})
	}

	return soil.NewSample(*r.PH, *r.Moisture,
		soil.NewNutrientProfile(*n.Nitrogen, *n.Phosphorus, *n.Potassium)), nil
}

// ParseSampleFromRequest parses a soil sample from the request query string.
func ParseSampleFromRequest(r *http.Request) (soil.Sample, error) {
	if r == nil {
		return soil.Sample{}, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request cannot be nil")
	}
	return ParseSampleFromValues(r.URL.Query())
}

// ParseSampleFromValues parses a soil sample from URL values. All five
// readings are required; only their numeric form is checked.
func ParseSampleFromValues(values url.Values) (soil.Sample, error) {
	var missing []string
	get := func(name string) string {
		v := strings.TrimSpace(values.Get(name))
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}

	phRaw := get(ParamPH)
	moistureRaw := get(ParamMoisture)
	nRaw := get(ParamNitrogen)
	pRaw := get(ParamPhosphorus)
	kRaw := get(ParamPotassium)

	if len(missing) > 0 {
		return soil.Sample{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"missing query parameters: "+strings.Join(missing, ", "),
			map[string]any{"missing": missing})
	}

	ph, err := soil.ParsePH(phRaw)
	if err != nil {
		return soil.Sample{}, invalidReading(ParamPH, err)
	}

	levels := make([]int, 0, 4)
	for _, p := range []struct{ name, raw string }{
		{ParamMoisture, moistureRaw},
		{ParamNitrogen, nRaw},
		{ParamPhosphorus, pRaw},
		{ParamPotassium, kRaw},
	} {
		v, err := soil.ParseLevel(p.name, p.raw)
		if err != nil {
			return soil.Sample{}, invalidReading(p.name, err)
		}
		levels = append(levels, v)
	}

	return soil.NewSample(ph, levels[0],
		soil.NewNutrientProfile(levels[1], levels[2], levels[3])), nil
}

func invalidReading(name string, err error) error {
	return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid %s reading", name), err,
		map[string]any{"parameter": name})
}

// ParseSampleFromBody parses a soil sample from a request body. JSON and
// YAML are selected by Content-Type; empty or unrecognized types are
// treated as JSON.
//
// Example JSON body:
//
//	{"ph": 6.5, "moisture": 40, "nutrients": {"nitrogen": 90, "phosphorus": 70, "potassium": 50}}
func ParseSampleFromBody(body io.Reader, contentType string) (soil.Sample, error) {
	var raw rawSample
	if err := serializer.DecodeBody(body, contentType, defaults.MaxRequestBodyBytes, &raw); err != nil {
		return soil.Sample{}, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid soil sample body", err)
	}
	return raw.toSample()
}

// LoadSampleFromFile reads a soil sample from a JSON or YAML file.
//
// Example YAML:
//
//	ph: 6.5
//	moisture: 40
//	nutrients:
//	  nitrogen: 90
//	  phosphorus: 70
//	  potassium: 50
func LoadSampleFromFile(path string) (soil.Sample, error) {
	raw, err := serializer.FromFile[rawSample](path)
	if err != nil {
		return soil.Sample{}, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to load soil sample file", err)
	}
	return raw.toSample()
}
