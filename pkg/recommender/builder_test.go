package recommender

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NVIDIA/crop-advisor/pkg/crop"
	"github.com/NVIDIA/crop-advisor/pkg/header"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

func TestNewBuilder(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantVer string
	}{
		{"default", nil, ""},
		{"with version", []Option{WithVersion("v1.2.3")}, "v1.2.3"},
		{"last option wins", []Option{WithVersion("v1.0.0"), WithVersion("v2.0.0")}, "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBuilder(tt.opts...); got.Version != tt.wantVer {
				t.Errorf("NewBuilder() version = %v, want %v", got.Version, tt.wantVer)
			}
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(WithVersion("v0.1.0"))

	rec, err := b.Build(context.Background(), soil.NewSample(6.5, 40, soil.NewNutrientProfile(90, 70, 50)))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if rec.Kind != header.KindRecommendation {
		t.Errorf("Kind = %q", rec.Kind)
	}
	if rec.APIVersion != header.APIVersion {
		t.Errorf("APIVersion = %q", rec.APIVersion)
	}
	if rec.Metadata["version"] != "v0.1.0" || rec.Metadata["timestamp"] == "" {
		t.Errorf("Metadata = %v", rec.Metadata)
	}
	if rec.Message != "" {
		t.Errorf("Message = %q, want empty", rec.Message)
	}

	want := []string{"Wheat", "Maize", "Soybean", "Cotton", "Barley", "Peanut"}
	if diff := cmp.Diff(want, rec.Names()); diff != "" {
		t.Errorf("crops mismatch (-want +got):\n%s", diff)
	}
	if rec.Crops[1].PestControl != "Stem Borer, Armyworm" || rec.Crops[1].Rotation != "Wheat" {
		t.Errorf("Maize advice = %+v", rec.Crops[1])
	}
}

func TestBuilder_BuildEmpty(t *testing.T) {
	rec, err := NewBuilder().Build(context.Background(), soil.NewSample(6.5, 40, soil.NutrientProfile{}))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if rec.Crops == nil || len(rec.Crops) != 0 {
		t.Errorf("Crops = %#v, want empty non-nil", rec.Crops)
	}
	if rec.Message != EmptyMessage {
		t.Errorf("Message = %q", rec.Message)
	}
}

func TestBuilder_BuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewBuilder().Build(ctx, soil.Sample{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestBuilder_MissingAdvisoryFallsBack(t *testing.T) {
	catalog, err := crop.NewCatalog([]crop.Entry{
		{Name: "Millet", Requirement: crop.Requirement{MinPH: 5, MaxPH: 8, MinMoisture: 10, MaxMoisture: 40}},
	}, crop.Advisories{
		Rotation: map[string]string{"Millet": "Sorghum"},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}

	rec, err := NewBuilder(WithCatalog(catalog)).Build(context.Background(), soil.NewSample(6, 20, soil.NutrientProfile{}))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []CropAdvice{{
		Name:        "Millet",
		PestControl: crop.NoPestData,
		Rotation:    "Sorghum",
		Irrigation:  crop.NoIrrigationSchedule,
	}}
	if diff := cmp.Diff(want, rec.Crops); diff != "" {
		t.Errorf("crops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Advise(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		input     string
		wantName  string
		wantKnown bool
		wantRot   string
	}{
		{"Wheat", "Wheat", true, "Soybean"},
		{"wheat", "Wheat", true, "Soybean"},
		{"  POTATO ", "Potato", true, "Tomato"},
		{"quinoa", "Quinoa", false, crop.NoRotationPlan},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, err := b.Advise(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Advise() error: %v", err)
			}
			if a.Kind != header.KindCropAdvice {
				t.Errorf("Kind = %q", a.Kind)
			}
			if a.Name != tt.wantName || a.Known != tt.wantKnown || a.Rotation != tt.wantRot {
				t.Errorf("Advise(%q) = %+v", tt.input, a)
			}
		})
	}
}

func TestBuilder_Crops(t *testing.T) {
	doc, err := NewBuilder(WithVersion("v9")).Crops(context.Background())
	if err != nil {
		t.Fatalf("Crops() error: %v", err)
	}
	if doc.Kind != header.KindCatalog || len(doc.Crops) != 10 {
		t.Errorf("Crops() = kind %q, %d crops", doc.Kind, len(doc.Crops))
	}
	if doc.Metadata["version"] != "v9" {
		t.Errorf("Metadata = %v", doc.Metadata)
	}
}

func TestRecommendation_RenderText(t *testing.T) {
	t.Run("crops", func(t *testing.T) {
		rec := &Recommendation{Crops: []CropAdvice{{
			Name:        "Wheat",
			PestControl: "Aphids, Armyworms",
			Rotation:    "Soybean",
			Irrigation:  "Irrigate every 7 days",
		}}}

		var buf bytes.Buffer
		if err := rec.RenderText(&buf); err != nil {
			t.Fatalf("RenderText() error: %v", err)
		}

		want := strings.Join([]string{
			"",
			"Based on the provided soil, moisture, and nutrient data, suitable crops are:",
			"- Wheat",
			"  Pest control suggestions for Wheat: Aphids, Armyworms",
			"  Suggested crop rotation: Soybean",
			"  Irrigation schedule: Irrigate every 7 days",
			"",
		}, "\n")
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("RenderText() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (&Recommendation{Crops: []CropAdvice{}}).RenderText(&buf); err != nil {
			t.Fatalf("RenderText() error: %v", err)
		}
		if buf.String() != EmptyMessage+"\n" {
			t.Errorf("RenderText() = %q", buf.String())
		}
	})
}

func TestRecommendation_TableRows(t *testing.T) {
	rec := &Recommendation{Crops: []CropAdvice{
		{Name: "Rice", PestControl: "BPH, Leaf Folder", Rotation: "Maize", Irrigation: "Irrigate every 5 days"},
	}}
	header, rows := rec.TableRows()
	if len(header) != 4 || len(rows) != 1 || rows[0][0] != "Rice" || rows[0][3] != "Irrigate every 5 days" {
		t.Errorf("TableRows() = %v %v", header, rows)
	}
}

func TestAdvisory_RenderText(t *testing.T) {
	a, err := NewBuilder().Advise(context.Background(), "carrot")
	if err != nil {
		t.Fatalf("Advise() error: %v", err)
	}

	var buf bytes.Buffer
	if err := a.RenderText(&buf); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}
	want := "Carrot\n" +
		"  Pest control suggestions for Carrot: Carrot Rust Fly, Aphids\n" +
		"  Suggested crop rotation: Barley\n" +
		"  Irrigation schedule: Irrigate every 7 days\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("RenderText() mismatch (-want +got):\n%s", diff)
	}

	_, rows := a.TableRows()
	if rows[0][1] != "Carrot" || rows[2][1] != "Barley" {
		t.Errorf("TableRows() = %v", rows)
	}
}
