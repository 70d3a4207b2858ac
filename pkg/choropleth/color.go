// Package choropleth colours countries by population and rasterises the map layer on the CPU.
package choropleth

import (
	"image/color"
	"math"
)

var (
	ColorNoData     = color.RGBA{80, 80, 80, 255}
	ColorBackground = color.RGBA{20, 20, 20, 255}
	ColorOutline    = color.RGBA{80, 80, 80, 80} // white at alpha 80, premultiplied
)

// Log10 population bounds of the colour ramp: 10K to about 1.4B.
const (
	MinLogPopulation = 4.0
	MaxLogPopulation = 9.2
)

var rampStops = []color.RGBA{
	{20, 30, 60, 255},
	{50, 80, 150, 255},
	{50, 150, 100, 255},
	{200, 200, 50, 255},
	{255, 150, 50, 255},
	{200, 50, 50, 255},
}

// PopulationColor returns the fill for a country. Zero or negative population means no data.
func PopulationColor(population float64) color.RGBA {
	if population <= 0 || math.IsNaN(population) {
		return ColorNoData
	}
	t := (math.Log10(population) - MinLogPopulation) / (MaxLogPopulation - MinLogPopulation)
	return ScaleColor(t)
}

// ScaleColor samples the ramp at t in [0, 1]; values outside are clamped.
func ScaleColor(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segments := float64(len(rampStops) - 1)
	i := int(t * segments)
	if i >= len(rampStops)-1 {
		i = len(rampStops) - 2
	}
	return lerp(rampStops[i], rampStops[i+1], t*segments-float64(i))
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// LegendTick is a labelled position on the legend bar.
type LegendTick struct {
	Label string
	T     float64
}

// LegendTicks mark 10K..1B+ evenly along the bar.
var LegendTicks = []LegendTick{
	{"10K", 0},
	{"100K", 0.2},
	{"1M", 0.4},
	{"10M", 0.6},
	{"100M", 0.8},
	{"1B+", 1},
}
