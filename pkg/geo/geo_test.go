package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

var square = orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

func TestRingContainsSquare(t *testing.T) {
	tests := []struct {
		p    orb.Point
		want bool
	}{
		{orb.Point{5, 5}, true},
		{orb.Point{15, 5}, false},
		{orb.Point{-5, 5}, false},
		{orb.Point{5, 15}, false},
		{orb.Point{5, -0.1}, false},
		{orb.Point{9.99, 0.01}, true},
		{orb.Point{1000, 1000}, false},
	}
	for _, tt := range tests {
		if got := RingContains(square, tt.p); got != tt.want {
			t.Errorf("RingContains(square, %v) = %v; want %v", tt.p, got, tt.want)
		}
	}
}

func TestRingContainsBoundaryIsStable(t *testing.T) {
	first := RingContains(square, orb.Point{0, 5})
	for i := 0; i < 100; i++ {
		if got := RingContains(square, orb.Point{0, 5}); got != first {
			t.Fatalf("RingContains on the boundary changed from %v to %v on call %d", first, got, i)
		}
	}
}

func TestRingContainsCentroidOfConvexRings(t *testing.T) {
	for n := 3; n <= 12; n++ {
		ring := make(orb.Ring, n)
		var cx, cy float64
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			ring[i] = orb.Point{20 + 7*math.Cos(a), -30 + 4*math.Sin(a)}
			cx += ring[i][0]
			cy += ring[i][1]
		}
		c := orb.Point{cx / float64(n), cy / float64(n)}
		if !RingContains(ring, c) {
			t.Errorf("RingContains(%d-gon, centroid %v) = false; want true", n, c)
		}
		if RingContains(ring, orb.Point{100, 100}) {
			t.Errorf("RingContains(%d-gon, far point) = true; want false", n)
		}
	}
}

func TestRingContainsDegenerate(t *testing.T) {
	rings := []orb.Ring{nil, {}, {{0, 0}}, {{0, 0}, {10, 10}}}
	for _, r := range rings {
		if RingContains(r, orb.Point{0, 0}) {
			t.Errorf("RingContains(%v) = true; want false for fewer than 3 points", r)
		}
	}
}

func TestRingContainsHorizontalEdges(t *testing.T) {
	// Closed ring with a repeated first point and two horizontal edges.
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	if !RingContains(ring, orb.Point{5, 5}) {
		t.Error("RingContains(closed square, center) = false; want true")
	}
	if RingContains(ring, orb.Point{5, 11}) {
		t.Error("RingContains(closed square, above) = true; want false")
	}
}

func TestFeatureContainsIgnoresHoles(t *testing.T) {
	hole := orb.Ring{{4, 4}, {4, 6}, {6, 6}, {6, 4}}
	f := NewFeature("Donut", KindPolygon, []orb.Polygon{{square, hole}})
	if !f.Contains(orb.Point{5, 5}) {
		t.Error("point inside a hole should still be reported as contained")
	}
	if !f.Contains(orb.Point{2, 2}) {
		t.Error("point in the solid part should be contained")
	}
}

func TestFeatureContainsMultiPolygon(t *testing.T) {
	east := orb.Ring{{20, 0}, {20, 10}, {30, 10}, {30, 0}}
	f := NewFeature("Islands", KindMultiPolygon, []orb.Polygon{{square}, {east}})
	tests := []struct {
		p    orb.Point
		want bool
	}{
		{orb.Point{5, 5}, true},
		{orb.Point{25, 5}, true},
		{orb.Point{15, 5}, false},
	}
	for _, tt := range tests {
		if got := f.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v; want %v", tt.p, got, tt.want)
		}
	}
	if (*Feature)(nil).Contains(orb.Point{5, 5}) {
		t.Error("nil feature should contain nothing")
	}
}

func TestAtlasFeatureAtFirstMatchWins(t *testing.T) {
	a := NewAtlas([]*Feature{
		NewFeature("First", KindPolygon, []orb.Polygon{{square}}),
		NewFeature("Second", KindPolygon, []orb.Polygon{{square}}),
	})
	f, ok := a.FeatureAt(orb.Point{5, 5})
	if !ok || f.Name != "First" {
		t.Errorf("FeatureAt returned %v, %v; want First", f, ok)
	}
	if _, ok := a.FeatureAt(orb.Point{50, 50}); ok {
		t.Error("FeatureAt outside every feature should miss")
	}
}

func TestLinearMap(t *testing.T) {
	tests := []struct {
		v, inMin, inMax, outMin, outMax, want float64
	}{
		{0, -180, 180, 0, 360, 180},
		{-180, -180, 180, 0, 1000, 0},
		{180, -180, 180, 0, 1000, 1000},
		{270, -180, 180, 0, 360, 450},
		{0, 85, -85, 0, 170, 85},
	}
	for _, tt := range tests {
		if got := LinearMap(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LinearMap(%v, %v, %v, %v, %v) = %v; want %v", tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
		}
	}
}

func TestLonLatToScreen(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	tests := []struct {
		lon, lat     float64
		wantX, wantY float64
	}{
		{0, 0, 960, 540},
		{-180, 85, 0, 0},
		{180, -85, 1920, 1080},
		{90, 42.5, 1440, 270},
	}
	for _, tt := range tests {
		x, y := LonLatToScreen(tt.lon, tt.lat, vp)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("LonLatToScreen(%f, %f) = (%f, %f); want (%f, %f)", tt.lon, tt.lat, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	viewports := []Viewport{{1, 1}, {800, 600}, {1920, 1080}, {333.3, 7}}
	for _, vp := range viewports {
		for lon := -180.0; lon <= 180; lon += 22.5 {
			for lat := -85.0; lat <= 85; lat += 8.5 {
				x, y := LonLatToScreen(lon, lat, vp)
				gotLon, gotLat := ScreenToLonLat(x, y, vp)
				if math.Abs(gotLon-lon) > 1e-9 || math.Abs(gotLat-lat) > 1e-9 {
					t.Errorf("round trip of (%v, %v) in %v gave (%v, %v)", lon, lat, vp, gotLon, gotLat)
				}
			}
		}
	}
}

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Nothing"}, "geometry": null},
    {"type": "Feature", "properties": {"name": "Squareland"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,10],[10,10],[10,0],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "Archipelago"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[20,0],[20,10],[30,10],[30,0],[20,0]]],
       [[]],
       [[[40,0],[40,10],[50,10],[50,0],[40,0]]]
     ]}},
    {"type": "Feature", "properties": {"name": "Pin"},
     "geometry": {"type": "Point", "coordinates": [1, 1]}}
  ]
}`

func TestParseAtlas(t *testing.T) {
	a, err := ParseAtlas([]byte(sampleGeoJSON))
	if err != nil {
		t.Fatalf("ParseAtlas failed: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", a.Len())
	}
	arch, ok := a.Feature("Archipelago")
	if !ok {
		t.Fatal("Archipelago not loaded")
	}
	if arch.Kind != KindMultiPolygon || len(arch.Polygons) != 2 {
		t.Errorf("Archipelago = %v with %d polygons; want MultiPolygon with 2", arch.Kind, len(arch.Polygons))
	}
	if f, ok := a.FeatureAt(orb.Point{45, 5}); !ok || f.Name != "Archipelago" {
		t.Errorf("FeatureAt(45,5) = %v, %v; want Archipelago", f, ok)
	}

	vp := Viewport{Width: 360, Height: 170}
	x, y := LonLatToScreen(5, 5, vp)
	if f, ok := a.FeatureAtScreen(x, y, vp); !ok || f.Name != "Squareland" {
		t.Errorf("FeatureAtScreen(%v, %v) = %v, %v; want Squareland", x, y, f, ok)
	}
}

func TestParseAtlasEmpty(t *testing.T) {
	_, err := ParseAtlas([]byte(`{"type": "FeatureCollection", "features": []}`))
	if !errors.Is(err, ErrNoFeatures) {
		t.Errorf("ParseAtlas error = %v; want ErrNoFeatures", err)
	}
}

func TestProjectFeature(t *testing.T) {
	f := NewFeature("Squareland", KindPolygon, []orb.Polygon{{square}})
	polys := ProjectFeature(f, Viewport{Width: 360, Height: 170})
	if len(polys) != 1 || len(polys[0]) != 1 || len(polys[0][0]) != 4 {
		t.Fatalf("ProjectFeature shape = %v", polys)
	}
	if p := polys[0][0][0]; p.X != 180 || p.Y != 85 {
		t.Errorf("first vertex = %v; want {180 85}", p)
	}
}
