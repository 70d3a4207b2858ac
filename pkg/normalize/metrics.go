package normalize

import (
	"math"

	"github.com/sudorandom/population-explorer/pkg/dataset"
)

type MetricID int

const (
	MetricPopulation MetricID = iota
	MetricGrowth
	MetricDensity
	MetricYouth
	MetricUrban
	MetricFertility
)

// Score is one radar axis.
type Score struct {
	ID    MetricID
	Label string
	Raw   float64
	Value float64
}

// Relative is the rounded distance from the world average, e.g. 62 -> 12.
func (s Score) Relative() int {
	return int(math.Round(s.Value)) - 50
}

// Scores returns the six radar axes in drawing order, clockwise from the top.
func (n Normalizer) Scores(r dataset.CountryRecord) []Score {
	return []Score{
		{MetricPopulation, "Population", r.Population, n.Population(r.Population)},
		{MetricGrowth, "Pop Annual Growth", r.YearlyChangePercent, n.Growth(r.YearlyChangePercent)},
		{MetricDensity, "Density (people/km²)", r.Density, n.Density(r.Density)},
		{MetricYouth, "Young Pop", r.MedianAge, n.Youth(r.MedianAge)},
		{MetricUrban, "Urbanization", r.UrbanPercent, n.Urban(r.UrbanPercent)},
		{MetricFertility, "Fertility", r.FertilityRate, n.Fertility(r.FertilityRate)},
	}
}
