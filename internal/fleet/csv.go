package fleet

// csv.go - CSV seed data loading

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the required column order for seed files.
var csvHeader = []string{"fleet_id", "month", "availability", "missions_completed", "maintenance_hours"}

// LoadCSV reads fleet records from a CSV seed file. The file must carry
// the header fleet_id,month,availability,missions_completed,maintenance_hours.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// ReadCSV parses fleet records from CSV data.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("expected column %q at position %d, got %q", col, i, header[i])
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		availability, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid availability %q", line, row[2])
		}
		missions, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid missions_completed %q", line, row[3])
		}
		maintenance, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid maintenance_hours %q", line, row[4])
		}

		records = append(records, Record{
			FleetID:          row[0],
			Month:            row[1],
			Availability:     availability,
			MissionsComplete: missions,
			MaintenanceHours: maintenance,
		})
	}
	return records, nil
}
