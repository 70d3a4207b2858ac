package geo

import "github.com/paulmach/orb"

// Contains tests the outer ring of each polygon and reports true on the first hit.
func (f *Feature) Contains(p orb.Point) bool {
	if f == nil {
		return false
	}
	for i, poly := range f.Polygons {
		if len(poly) == 0 {
			continue
		}
		// Outside the bounding box the even-odd test can only answer false.
		if i < len(f.bounds) && !f.bounds[i].Contains(p) {
			continue
		}
		if RingContains(poly[0], p) {
			return true
		}
	}
	return false
}

// RingContains is an even-odd ray cast towards +x. Horizontal edges are skipped and an edge
// counts when exactly one endpoint lies above p. Rings with fewer than 3 points contain nothing.
// Points on an edge get a stable but unspecified answer.
func RingContains(ring orb.Ring, p orb.Point) bool {
	if len(ring) < 3 {
		return false
	}
	x, y := p[0], p[1]
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if yi == yj {
			j = i
			continue
		}
		if (yi > y) != (yj > y) {
			intersectX := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < intersectX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
