package choropleth

import (
	"image"
	"image/color"
	"math"

	"github.com/sudorandom/population-explorer/pkg/geo"
)

// PopulationSource is the part of the record store the map needs. A join miss returns 0.
type PopulationSource interface {
	Population(name string) float64
}

// Shape is a country ready to paint: screen-space polygons plus fill colour.
type Shape struct {
	Name     string
	Fill     color.RGBA
	HasData  bool
	Polygons [][][]geo.ScreenPoint
}

// BuildShapes projects every feature into vp and colours it by population.
func BuildShapes(atlas *geo.Atlas, pops PopulationSource, vp geo.Viewport) []Shape {
	shapes := make([]Shape, 0, atlas.Len())
	for _, f := range atlas.Features() {
		p := pops.Population(f.Name)
		shapes = append(shapes, Shape{
			Name:     f.Name,
			Fill:     PopulationColor(p),
			HasData:  p > 0,
			Polygons: geo.ProjectFeature(f, vp),
		})
	}
	return shapes
}

// Render paints shapes in order onto a fresh width x height buffer.
func Render(shapes []Shape, width, height int) *image.RGBA {
	r := NewRaster(width, height, ColorBackground)
	for _, s := range shapes {
		for _, poly := range s.Polygons {
			r.FillPolygon(poly, s.Fill)
		}
	}
	for _, s := range shapes {
		for _, poly := range s.Polygons {
			for _, ring := range poly {
				r.StrokeRing(ring, ColorOutline)
			}
		}
	}
	return r.Img
}

// RenderMap is BuildShapes followed by Render for the viewport size.
func RenderMap(atlas *geo.Atlas, pops PopulationSource, vp geo.Viewport) *image.RGBA {
	w, h := int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))
	if !vp.Valid() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return Render(BuildShapes(atlas, pops, vp), w, h)
}

// Outline strokes the outer and inner rings of f on top of an existing image.
func Outline(img *image.RGBA, f *geo.Feature, vp geo.Viewport, c color.RGBA) {
	b := img.Bounds()
	r := &Raster{Img: img, Width: b.Dx(), Height: b.Dy()}
	for _, poly := range geo.ProjectFeature(f, vp) {
		for _, ring := range poly {
			r.StrokeRing(ring, c)
		}
	}
}
