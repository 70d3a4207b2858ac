package explorer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/biter777/countries"
	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
	"github.com/sudorandom/population-explorer/pkg/normalize"
)

// Tooltip placement relative to the pointer.
const (
	TooltipOffset = 12.0
	TooltipMargin = 6.0
)

// FormatNumber abbreviates v with one decimal as B, M or K. Smaller values print as is.
func FormatNumber(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RelativeLabel describes a radar score against the world average at 50.
func RelativeLabel(s normalize.Score) string {
	d := s.Relative()
	switch {
	case d == 0:
		return "= avg"
	case d > 0:
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

// CardTitle appends the ISO 3166 alpha-2 code when the name is a known country.
func CardTitle(name string) string {
	if c := countries.ByName(name); c != countries.Unknown {
		return fmt.Sprintf("%s (%s)", name, c.Alpha2())
	}
	return name
}

// CardLines are the summary rows printed above the radar chart.
func CardLines(rec dataset.CountryRecord) []string {
	return []string{
		"Population: " + FormatNumber(rec.Population),
		fmt.Sprintf("World Share: %.2f%%", rec.WorldSharePercent),
		"Land Area: " + FormatNumber(rec.LandAreaKm2) + " km²",
	}
}

// TooltipLines returns the country name followed, in rich mode, by the joined figures.
func TooltipLines(name string, rec dataset.CountryRecord, found, rich bool) []string {
	lines := []string{name}
	if !rich {
		return lines
	}
	if !found {
		return append(lines, "No data available")
	}
	return append(lines,
		"Population: "+FormatNumber(rec.Population),
		"Density: "+FormatNumber(rec.Density)+" P/Km²",
		fmt.Sprintf("Yearly Change: %.2f%%", rec.YearlyChangePercent),
		fmt.Sprintf("World Share: %.2f%%", rec.WorldSharePercent),
		"Median Age: "+FormatNumber(rec.MedianAge),
	)
}

// PlaceTooltip returns the top-left corner for a w x h tooltip shown at pointer (x, y). The box
// sits below right of the pointer, flips left when it would cross the right edge and is kept
// TooltipMargin away from the viewport edges.
func PlaceTooltip(x, y, w, h float64, vp geo.Viewport) (float64, float64) {
	bx, by := x+TooltipOffset, y+TooltipOffset
	if bx+w+TooltipMargin > vp.Width {
		bx = x - TooltipOffset - w
	}
	if by+h+TooltipMargin > vp.Height {
		by = vp.Height - TooltipMargin - h
	}
	return math.Max(bx, TooltipMargin), math.Max(by, TooltipMargin)
}
