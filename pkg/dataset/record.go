// Package dataset holds the per-country demographic table and the world averages derived from it.
package dataset

// CountryRecord is one row of the population table. Numeric fields that could not be parsed are 0.
type CountryRecord struct {
	Name                string  `json:"name"`
	Population          float64 `json:"population"`
	YearlyChangePercent float64 `json:"yearly_change"`
	NetChange           float64 `json:"net_change"`
	Density             float64 `json:"density"`
	LandAreaKm2         float64 `json:"land_area"`
	Migrants            float64 `json:"migrants"`
	FertilityRate       float64 `json:"fertility_rate"`
	MedianAge           float64 `json:"median_age"`
	UrbanPercent        float64 `json:"urban_pop"`
	WorldSharePercent   float64 `json:"world_share"`
}

// Valid reports whether the record takes part in the world average computation.
func (r CountryRecord) Valid() bool {
	return r.Population > 0 && r.MedianAge > 0 && r.FertilityRate > 0
}

// Columns maps record fields to table header names.
type Columns struct {
	Country       string
	Population    string
	YearlyChange  string
	NetChange     string
	Density       string
	LandArea      string
	Migrants      string
	FertilityRate string
	MedianAge     string
	UrbanPop      string
	WorldShare    string
}

// DefaultColumns matches the headers of the 2025 world population table.
var DefaultColumns = Columns{
	Country:       "Country (or dependency)",
	Population:    "Population 2025",
	YearlyChange:  "Yearly Change",
	NetChange:     "Net Change",
	Density:       "Density (P/Km²)",
	LandArea:      "Land Area (Km²)",
	Migrants:      "Migrants (net)",
	FertilityRate: "Fert. Rate",
	MedianAge:     "Median Age",
	UrbanPop:      "Urban Pop %",
	WorldShare:    "World Share",
}
