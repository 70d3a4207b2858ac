package geo

import "github.com/paulmach/orb"

// Map extent of the equirectangular projection. Latitude is cropped to ±85 degrees.
const (
	WestLon  = -180.0
	EastLon  = 180.0
	NorthLat = 85.0
	SouthLat = -85.0
)

// Viewport is the current drawing surface size in pixels. It is read on every projection call so
// a resized window needs no stored pixel state.
type Viewport struct {
	Width, Height float64
}

func (vp Viewport) Valid() bool { return vp.Width > 0 && vp.Height > 0 }

// ScreenPoint is a position in pixels, origin top-left.
type ScreenPoint struct {
	X, Y float64
}

// LinearMap maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func LinearMap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func LonLatToScreen(lon, lat float64, vp Viewport) (x, y float64) {
	x = LinearMap(lon, WestLon, EastLon, 0, vp.Width)
	y = LinearMap(lat, NorthLat, SouthLat, 0, vp.Height)
	return x, y
}

func ScreenToLonLat(x, y float64, vp Viewport) (lon, lat float64) {
	lon = LinearMap(x, 0, vp.Width, WestLon, EastLon)
	lat = LinearMap(y, 0, vp.Height, NorthLat, SouthLat)
	return lon, lat
}

// ProjectRing converts a lon/lat ring into screen space.
func ProjectRing(ring orb.Ring, vp Viewport) []ScreenPoint {
	out := make([]ScreenPoint, len(ring))
	for i, p := range ring {
		out[i].X, out[i].Y = LonLatToScreen(p[0], p[1], vp)
	}
	return out
}

// ProjectFeature returns screen-space rings grouped per polygon, outer ring first.
func ProjectFeature(f *Feature, vp Viewport) [][][]ScreenPoint {
	polys := make([][][]ScreenPoint, 0, len(f.Polygons))
	for _, poly := range f.Polygons {
		rings := make([][]ScreenPoint, 0, len(poly))
		for _, ring := range poly {
			rings = append(rings, ProjectRing(ring, vp))
		}
		polys = append(polys, rings)
	}
	return polys
}
