// Package geo resolves screen and geographic positions to country features.
//
// Containment only looks at the outer ring of every polygon. Points inside a hole (an enclave or a
// lake) still count as inside the surrounding country, which keeps the clickable area identical to
// the filled silhouette users see on the map.
package geo

import "github.com/paulmach/orb"

type Kind int

const (
	KindPolygon Kind = iota
	KindMultiPolygon
)

func (k Kind) String() string {
	if k == KindMultiPolygon {
		return "MultiPolygon"
	}
	return "Polygon"
}

// Feature is one country outline. A Polygon feature has exactly one entry in Polygons; each polygon
// holds its outer ring first followed by any holes. Coordinates are orb.Point{lon, lat}.
type Feature struct {
	Name     string
	Kind     Kind
	Polygons []orb.Polygon

	bounds []orb.Bound
}

// NewFeature builds a feature and caches the bounds of every outer ring.
func NewFeature(name string, kind Kind, polygons []orb.Polygon) *Feature {
	f := &Feature{Name: name, Kind: kind, Polygons: polygons}
	f.bounds = make([]orb.Bound, len(polygons))
	for i, poly := range polygons {
		if len(poly) > 0 {
			f.bounds[i] = poly[0].Bound()
		}
	}
	return f
}

// Bound covers every outer ring of the feature.
func (f *Feature) Bound() orb.Bound {
	var b orb.Bound
	for i, pb := range f.bounds {
		if i == 0 {
			b = pb
			continue
		}
		b = b.Union(pb)
	}
	return b
}

// Atlas is the ordered, read-only feature set. Iteration order decides ties between features that
// share a boundary.
type Atlas struct {
	features []*Feature
	byName   map[string]*Feature
}

func NewAtlas(features []*Feature) *Atlas {
	a := &Atlas{features: features, byName: make(map[string]*Feature, len(features))}
	for _, f := range features {
		if _, ok := a.byName[f.Name]; !ok {
			a.byName[f.Name] = f
		}
	}
	return a
}

func (a *Atlas) Features() []*Feature { return a.features }

func (a *Atlas) Len() int { return len(a.features) }

// Feature returns the first feature carrying name.
func (a *Atlas) Feature(name string) (*Feature, bool) {
	f, ok := a.byName[name]
	return f, ok
}

// FeatureAt returns the first feature, in load order, containing the geographic point.
func (a *Atlas) FeatureAt(p orb.Point) (*Feature, bool) {
	for _, f := range a.features {
		if f.Contains(p) {
			return f, true
		}
	}
	return nil, false
}

// FeatureAtScreen projects a pointer position back to lon/lat and resolves it.
func (a *Atlas) FeatureAtScreen(x, y float64, vp Viewport) (*Feature, bool) {
	lon, lat := ScreenToLonLat(x, y, vp)
	return a.FeatureAt(orb.Point{lon, lat})
}
