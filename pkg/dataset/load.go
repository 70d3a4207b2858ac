package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

var ErrNoCountryColumn = errors.New("country column not found in header")

// LoadCSV reads a population table with a header row. Columns missing from the header, short rows
// and unparseable cells all yield 0 for the affected fields.
func LoadCSV(r io.Reader, cols Columns) ([]CountryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoCountryColumn
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[cols.Country]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCountryColumn, cols.Country)
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	num := func(row []string, name string) float64 {
		return ParseNumber(cell(row, name))
	}

	var records []CountryRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		name := cell(row, cols.Country)
		if name == "" {
			log.Printf("[dataset] Skipping row %d without a country name", line)
			continue
		}
		records = append(records, CountryRecord{
			Name:                name,
			Population:          num(row, cols.Population),
			YearlyChangePercent: num(row, cols.YearlyChange),
			NetChange:           num(row, cols.NetChange),
			Density:             num(row, cols.Density),
			LandAreaKm2:         num(row, cols.LandArea),
			Migrants:            num(row, cols.Migrants),
			FertilityRate:       num(row, cols.FertilityRate),
			MedianAge:           num(row, cols.MedianAge),
			UrbanPercent:        num(row, cols.UrbanPop),
			WorldSharePercent:   num(row, cols.WorldShare),
		})
	}
	return records, nil
}
