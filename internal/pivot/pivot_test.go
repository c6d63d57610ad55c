package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fleetdash/internal/fleet"
)

func TestPivot_TwoFleetsOneMonth(t *testing.T) {
	records := []fleet.Record{
		{FleetID: "F-18", Month: "Jan", Availability: 85},
		{FleetID: "CH-147", Month: "Jan", Availability: 72},
	}

	res := Pivot(records)

	assert.Equal(t, []string{"F-18", "CH-147"}, res.Fleets)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Jan", res.Rows[0].Month)
	assert.Equal(t, map[string]float64{"F-18": 85, "CH-147": 72}, res.Rows[0].Values)
}

func TestPivot_MonthOrderIsFirstOccurrence(t *testing.T) {
	records := []fleet.Record{
		{FleetID: "F-18", Month: "Feb", Availability: 87},
		{FleetID: "F-18", Month: "Jan", Availability: 85},
		{FleetID: "CH-147", Month: "Feb", Availability: 75},
		{FleetID: "CH-147", Month: "Mar", Availability: 78},
	}

	res := Pivot(records)

	months := make([]string, len(res.Rows))
	for i, row := range res.Rows {
		months[i] = row.Month
	}
	assert.Equal(t, []string{"Feb", "Jan", "Mar"}, months)
	assert.Equal(t, []string{"F-18", "CH-147"}, res.Fleets)
}

func TestPivot_RowCountEqualsDistinctMonths(t *testing.T) {
	records := fleet.SampleRecords()

	res := Pivot(records)

	require.Len(t, res.Rows, 4)
	assert.Equal(t, []string{"F-18", "CH-147", "CP-140"}, res.Fleets)

	// Every row's keys are a subset of the distinct fleet IDs.
	known := make(map[string]struct{})
	for _, id := range res.Fleets {
		known[id] = struct{}{}
	}
	for _, row := range res.Rows {
		for id := range row.Values {
			_, ok := known[id]
			assert.True(t, ok, "row %s has unknown fleet %s", row.Month, id)
		}
	}
}

func TestPivot_DuplicatePairLastWriteWins(t *testing.T) {
	records := []fleet.Record{
		{FleetID: "F-18", Month: "Jan", Availability: 85},
		{FleetID: "F-18", Month: "Jan", Availability: 91},
	}

	res := Pivot(records)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, map[string]float64{"F-18": 91}, res.Rows[0].Values)
	assert.Equal(t, []string{"F-18"}, res.Fleets)
}

func TestPivot_MissingMonthMeansAbsentKey(t *testing.T) {
	records := []fleet.Record{
		{FleetID: "F-18", Month: "Jan", Availability: 85},
		{FleetID: "F-18", Month: "Feb", Availability: 87},
		{FleetID: "CH-147", Month: "Feb", Availability: 75},
	}

	res := Pivot(records)

	require.Len(t, res.Rows, 2)

	_, ok := res.Rows[0].Value("CH-147")
	assert.False(t, ok, "CH-147 has no Jan record, key must be absent")

	v, ok := res.Rows[1].Value("CH-147")
	assert.True(t, ok)
	assert.Equal(t, 75.0, v)
}

func TestPivot_EmptyInput(t *testing.T) {
	res := Pivot(nil)

	assert.Empty(t, res.Rows)
	assert.Empty(t, res.Fleets)
}

func TestColorFor_CyclesPalette(t *testing.T) {
	n := PaletteSize()

	assert.Equal(t, ColorFor(0), ColorFor(n))
	assert.Equal(t, ColorFor(1), ColorFor(n+1))
	assert.NotEqual(t, ColorFor(0), ColorFor(1))
}
