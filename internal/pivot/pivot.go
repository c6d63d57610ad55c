// Package pivot reshapes flat per-fleet/per-month records into the
// row-per-month form needed by a multi-series trend chart: one row per
// month, one value per fleet present in that month.
package pivot

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/fleetdash/internal/fleet"
)

// Row is one month of the pivoted trend data. Values is keyed by fleet
// identifier; a fleet with no record for the month is absent from the map.
type Row struct {
	Month  string
	Values map[string]float64
}

// Result is the output of Pivot: the pivoted rows plus the distinct fleet
// identifiers in order of first occurrence. The fleet order drives
// series-to-color assignment.
type Result struct {
	Rows   []Row
	Fleets []string
}

// Pivot reshapes records into row-per-month form. Months and fleets keep
// their order of first occurrence in the input. Duplicate (fleet, month)
// pairs resolve last-write-wins. Empty input yields an empty result.
func Pivot(records []fleet.Record) Result {
	var res Result

	rowIndex := make(map[string]int)
	seenFleet := make(map[string]struct{})

	for _, rec := range records {
		i, ok := rowIndex[rec.Month]
		if !ok {
			i = len(res.Rows)
			rowIndex[rec.Month] = i
			res.Rows = append(res.Rows, Row{
				Month:  rec.Month,
				Values: make(map[string]float64),
			})
		}
		res.Rows[i].Values[rec.FleetID] = rec.Availability

		if _, ok := seenFleet[rec.FleetID]; !ok {
			seenFleet[rec.FleetID] = struct{}{}
			res.Fleets = append(res.Fleets, rec.FleetID)
		}
	}
	return res
}

// Value returns the availability for a fleet in this row, and whether the
// fleet has a record for the month.
func (r Row) Value(fleetID string) (float64, bool) {
	v, ok := r.Values[fleetID]
	return v, ok
}

// palette holds the chart series colors. Assignment is positional by
// fleet order, cycling when there are more fleets than colors.
var palette = []lipgloss.Color{
	lipgloss.Color("39"),  // blue
	lipgloss.Color("213"), // pink
	lipgloss.Color("214"), // orange
	lipgloss.Color("78"),  // green
	lipgloss.Color("141"), // purple
	lipgloss.Color("203"), // red
}

// ColorFor returns the series color for the fleet at position i.
func ColorFor(i int) lipgloss.Color {
	return palette[i%len(palette)]
}

// PaletteSize returns the number of distinct series colors.
func PaletteSize() int {
	return len(palette)
}
