package crop

import (
	"fmt"
	"io"
	"strconv"
)

// RenderText writes one line per crop with its requirement ranges.
func (d *Document) RenderText(w io.Writer) error {
	for _, e := range d.Crops {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Name, e.Requirement); err != nil {
			return err
		}
	}
	return nil
}

// TableRows lists the crops in catalog order.
func (d *Document) TableRows() ([]string, [][]string) {
	header := []string{"CROP", "PH", "MOISTURE %", "MIN N/P/K"}
	rows := make([][]string, 0, len(d.Crops))
	for _, e := range d.Crops {
		r := e.Requirement
		rows = append(rows, []string{
			e.Name,
			strconv.FormatFloat(r.MinPH, 'f', 1, 64) + "-" + strconv.FormatFloat(r.MaxPH, 'f', 1, 64),
			fmt.Sprintf("%d-%d", r.MinMoisture, r.MaxMoisture),
			r.Required.String(),
		})
	}
	return header, rows
}
