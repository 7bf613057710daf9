package recommender

import (
	"context"

	"github.com/NVIDIA/crop-advisor/pkg/header"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

// EmptyMessage is reported when no catalog crop accepts the sample.
const EmptyMessage = "No suitable crops found for the provided conditions."

// Recommender produces a Recommendation for a soil sample.
type Recommender interface {
	Build(ctx context.Context, sample soil.Sample) (*Recommendation, error)
}

// Recommendation is the report for one soil sample: the crops it suits, in
// catalog order, each with its advisory text.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	// Sample is the input the recommendation was computed for.
	Sample soil.Sample `json:"sample" yaml:"sample"`

	// Crops is empty, never nil, when nothing matches.
	Crops []CropAdvice `json:"crops" yaml:"crops"`

	// Message is set only when Crops is empty.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// CropAdvice is the advisory text for one crop. Unknown crops carry the
// fallback strings.
type CropAdvice struct {
	Name        string `json:"name" yaml:"name"`
	PestControl string `json:"pestControl" yaml:"pestControl"`
	Rotation    string `json:"rotation" yaml:"rotation"`
	Irrigation  string `json:"irrigation" yaml:"irrigation"`
}

// Names returns the recommended crop names in order.
func (r *Recommendation) Names() []string {
	names := make([]string, 0, len(r.Crops))
	for _, c := range r.Crops {
		names = append(names, c.Name)
	}
	return names
}

// Advisory is the standalone advisory payload for one crop.
type Advisory struct {
	header.Header `json:",inline" yaml:",inline"`
	CropAdvice    `json:",inline" yaml:",inline"`

	// Known reports whether the crop is in the catalog.
	Known bool `json:"known" yaml:"known"`
}
