package recommender

import (
	"bufio"
	"fmt"
	"io"
)

// ReportHeading introduces the crop list in the text rendering.
const ReportHeading = "Based on the provided soil, moisture, and nutrient data, suitable crops are:"

// RenderText writes the human-readable report: a blank line, the heading and
// one block per crop, or the empty message on its own.
func (r *Recommendation) RenderText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(r.Crops) == 0 {
		fmt.Fprintln(bw, EmptyMessage)
		return bw.Flush()
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, ReportHeading)
	for _, c := range r.Crops {
		fmt.Fprintf(bw, "- %s\n", c.Name)
		c.renderDetails(bw)
	}
	return bw.Flush()
}

// TableRows lists one row per recommended crop.
func (r *Recommendation) TableRows() ([]string, [][]string) {
	header := []string{"CROP", "PEST CONTROL", "ROTATION", "IRRIGATION"}
	rows := make([][]string, 0, len(r.Crops))
	for _, c := range r.Crops {
		rows = append(rows, []string{c.Name, c.PestControl, c.Rotation, c.Irrigation})
	}
	return header, rows
}

func (c CropAdvice) renderDetails(w io.Writer) {
	fmt.Fprintf(w, "  Pest control suggestions for %s: %s\n", c.Name, c.PestControl)
	fmt.Fprintf(w, "  Suggested crop rotation: %s\n", c.Rotation)
	fmt.Fprintf(w, "  Irrigation schedule: %s\n", c.Irrigation)
}

// RenderText writes the advisory lines for a single crop.
func (a *Advisory) RenderText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", a.Name)
	a.renderDetails(bw)
	return bw.Flush()
}

// TableRows lists the advisory as FIELD/VALUE pairs.
func (a *Advisory) TableRows() ([]string, [][]string) {
	return []string{"FIELD", "VALUE"}, [][]string{
		{"Crop", a.Name},
		{"Pest control", a.PestControl},
		{"Rotation", a.Rotation},
		{"Irrigation", a.Irrigation},
	}
}
