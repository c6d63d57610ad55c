// Package fleet defines the fleet performance domain types and the
// aggregations computed over them. Records are per-fleet, per-month
// observations; summaries are per-fleet rollups across all months.
package fleet

import "math"

// Record is one fleet's performance for one month.
type Record struct {
	FleetID          string  `json:"fleet_id"`
	Month            string  `json:"month"`
	Availability     float64 `json:"availability"`
	MissionsComplete int     `json:"missions_completed"`
	MaintenanceHours float64 `json:"maintenance_hours"`
}

// Summary is the per-fleet rollup served by /api/fleet-summary.
type Summary struct {
	FleetID               string  `json:"fleet_id"`
	AvgAvailability       float64 `json:"avg_availability"`
	TotalMissions         int     `json:"total_missions"`
	TotalMaintenanceHours float64 `json:"total_maintenance_hours"`
}

// SampleRecords returns the built-in demo dataset: three fleets tracked
// over four months. Used when the server is started without a data file.
func SampleRecords() []Record {
	fleets := []struct {
		id           string
		availability []float64
		missions     []int
		maintenance  []float64
	}{
		{"F-18", []float64{85, 87, 82, 88}, []int{45, 52, 38, 55}, []float64{320, 280, 360, 250}},
		{"CH-147", []float64{72, 75, 78, 80}, []int{28, 32, 35, 40}, []float64{450, 420, 380, 350}},
		{"CP-140", []float64{90, 88, 92, 91}, []int{62, 58, 65, 63}, []float64{180, 210, 160, 175}},
	}
	months := []string{"Jan", "Feb", "Mar", "Apr"}

	var records []Record
	for _, f := range fleets {
		for i, m := range months {
			records = append(records, Record{
				FleetID:          f.id,
				Month:            m,
				Availability:     f.availability[i],
				MissionsComplete: f.missions[i],
				MaintenanceHours: f.maintenance[i],
			})
		}
	}
	return records
}

// Summarize groups records by fleet and computes the per-fleet rollup:
// mean availability (rounded to one decimal), total missions, and total
// maintenance hours. Fleets appear in order of first occurrence.
func Summarize(records []Record) []Summary {
	type acc struct {
		availability float64
		months       int
		missions     int
		maintenance  float64
	}

	order := make([]string, 0)
	byFleet := make(map[string]*acc)

	for _, rec := range records {
		a, ok := byFleet[rec.FleetID]
		if !ok {
			a = &acc{}
			byFleet[rec.FleetID] = a
			order = append(order, rec.FleetID)
		}
		a.availability += rec.Availability
		a.months++
		a.missions += rec.MissionsComplete
		a.maintenance += rec.MaintenanceHours
	}

	summaries := make([]Summary, 0, len(order))
	for _, id := range order {
		a := byFleet[id]
		summaries = append(summaries, Summary{
			FleetID:               id,
			AvgAvailability:       round1(a.availability / float64(a.months)),
			TotalMissions:         a.missions,
			TotalMaintenanceHours: round1(a.maintenance),
		})
	}
	return summaries
}

// Select returns the records belonging to one fleet, in input order.
func Select(records []Record, fleetID string) []Record {
	var out []Record
	for _, rec := range records {
		if rec.FleetID == fleetID {
			out = append(out, rec)
		}
	}
	return out
}

// round1 rounds to one decimal with ties going to the even digit, so
// a 76.25 mean publishes as 76.2.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
