package geo

import (
	"errors"
	"fmt"
	"io"
	"log"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

var ErrNoFeatures = errors.New("no usable country features")

// ReadAtlas decodes a GeoJSON feature collection from r.
func ReadAtlas(r io.Reader) (*Atlas, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading geojson: %w", err)
	}
	return ParseAtlas(data)
}

// ParseAtlas keeps Polygon and MultiPolygon features named by properties.name. Features without
// geometry, of another type or without any non-empty outer ring are skipped with a log line.
func ParseAtlas(data []byte) (*Atlas, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding geojson: %w", err)
	}

	features := make([]*Feature, 0, len(fc.Features))
	skipped := 0
	for i, f := range fc.Features {
		name := f.PropertyMustString("name", "")
		if f.Geometry == nil {
			log.Printf("[geo] Feature %d (%q) has no geometry, skipping", i, name)
			skipped++
			continue
		}

		var kind Kind
		var polygons []orb.Polygon
		switch {
		case f.Geometry.IsPolygon():
			kind = KindPolygon
			if p := toPolygon(f.Geometry.Polygon); p != nil {
				polygons = append(polygons, p)
			}
		case f.Geometry.IsMultiPolygon():
			kind = KindMultiPolygon
			for _, raw := range f.Geometry.MultiPolygon {
				if p := toPolygon(raw); p != nil {
					polygons = append(polygons, p)
				}
			}
		default:
			log.Printf("[geo] Feature %d (%q) has unsupported geometry %s, skipping", i, name, f.Geometry.Type)
			skipped++
			continue
		}
		if len(polygons) == 0 {
			log.Printf("[geo] Feature %d (%q) has no usable rings, skipping", i, name)
			skipped++
			continue
		}
		features = append(features, NewFeature(name, kind, polygons))
	}

	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	if skipped > 0 {
		log.Printf("[geo] Loaded %d features, skipped %d", len(features), skipped)
	}
	return NewAtlas(features), nil
}

// toPolygon drops malformed positions and empty rings. It returns nil when the outer ring is empty.
func toPolygon(rings [][][]float64) orb.Polygon {
	var poly orb.Polygon
	for i, raw := range rings {
		ring := make(orb.Ring, 0, len(raw))
		for _, pos := range raw {
			if len(pos) < 2 {
				continue
			}
			ring = append(ring, orb.Point{pos[0], pos[1]})
		}
		if len(ring) == 0 {
			if i == 0 {
				return nil
			}
			continue
		}
		poly = append(poly, ring)
	}
	return poly
}
