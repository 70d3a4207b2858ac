// Package normalize puts heterogeneous demographic quantities on a common 0-100 scale where 50
// stands for the world average.
package normalize

import (
	"math"

	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
)

// Normalizer scores raw values against fixed world averages. The zero value scores everything 0.
type Normalizer struct {
	Avg dataset.WorldAverages
}

func New(avg dataset.WorldAverages) Normalizer { return Normalizer{Avg: avg} }

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func score(v float64) float64 { return Clamp(v, 0, 100) }

// logRatio maps log10(raw/avg) from [-2, 2] to [0, 100]: 1/100 of the average is 0, the average
// is 50 and 100 times the average is 100.
func logRatio(raw, avg float64) float64 {
	if raw <= 0 || avg <= 0 {
		return 0
	}
	return score(geo.LinearMap(math.Log10(raw/avg), -2, 2, 0, 100))
}

// anchored maps a ratio to a score through two linear pieces: lo -> 0, 1 -> 50, hi -> 100.
// With lo = 0 and hi = 2 this is a single straight line.
func anchored(r, lo, hi float64) float64 {
	if r <= 1 {
		return score(geo.LinearMap(r, lo, 1, 0, 50))
	}
	return score(geo.LinearMap(r, 1, hi, 50, 100))
}

// ratio scores raw/avg on a 0..upper axis anchored at the average.
func ratio(raw, avg, upper float64) float64 {
	if avg == 0 {
		return 0
	}
	return anchored(raw/avg, 0, upper)
}

func (n Normalizer) Population(raw float64) float64 { return logRatio(raw, n.Avg.Population) }

func (n Normalizer) Density(raw float64) float64 { return logRatio(raw, n.Avg.Density) }

// Growth reaches 100 at 2.5 times the average yearly change.
func (n Normalizer) Growth(raw float64) float64 { return ratio(raw, n.Avg.Growth, 2.5) }

// Urban reaches 100 at twice the average urban share.
func (n Normalizer) Urban(raw float64) float64 { return ratio(raw, n.Avg.Urban, 2) }

// Fertility reaches 100 at 2.5 times the average fertility rate.
func (n Normalizer) Fertility(raw float64) float64 { return ratio(raw, n.Avg.Fertility, 2.5) }

// Youth is inverted: a median age at half the average scores 100, at twice the average 0.
// A missing age scores 0.
func (n Normalizer) Youth(medianAge float64) float64 {
	if medianAge <= 0 || n.Avg.MedianAge == 0 {
		return 0
	}
	return anchored(n.Avg.MedianAge/medianAge, 0.5, 2)
}
