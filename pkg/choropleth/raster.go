package choropleth

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/sudorandom/population-explorer/pkg/geo"
)

// Raster draws screen-space polygons into an RGBA buffer.
type Raster struct {
	Img           *image.RGBA
	Width, Height int
}

func NewRaster(width, height int, bg color.RGBA) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, 255
	}
	return &Raster{Img: img, Width: width, Height: height}
}

// FillPolygon scanline-fills the rings of one polygon with the even-odd rule, so holes stay open.
func (r *Raster) FillPolygon(rings [][]geo.ScreenPoint, c color.RGBA) {
	if len(rings) == 0 {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minY, 0) {
		return
	}
	y0, y1 := int(math.Max(minY, 0)), int(math.Min(maxY, float64(r.Height-1)))
	var nodes []int
	for y := y0; y <= y1; y++ {
		nodes = nodes[:0]
		fy := float64(y) + 0.5
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				a, b := ring[i], ring[(i+1)%len(ring)]
				if (a.Y < fy && b.Y >= fy) || (b.Y < fy && a.Y >= fy) {
					nodeX := a.X + (fy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
					nodes = append(nodes, int(math.Round(nodeX)))
				}
			}
		}
		sort.Ints(nodes)
		for i := 0; i+1 < len(nodes); i += 2 {
			xs, xe := nodes[i], nodes[i+1]
			if xs < 0 {
				xs = 0
			}
			if xe > r.Width {
				xe = r.Width
			}
			for x := xs; x < xe; x++ {
				r.blend(x, y, c)
			}
		}
	}
}

// StrokeRing draws the closed outline of a ring.
func (r *Raster) StrokeRing(ring []geo.ScreenPoint, c color.RGBA) {
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[(i+1)%len(ring)]
		r.Line(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), c)
	}
}

// Line is a Bresenham line clipped to the raster.
func (r *Raster) Line(x1, y1, x2, y2 int, c color.RGBA) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy
	for {
		r.blend(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// blend composites the premultiplied colour c over the pixel. Out of range pixels are ignored.
func (r *Raster) blend(x, y int, c color.RGBA) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	off := y*r.Img.Stride + x*4
	pix := r.Img.Pix[off : off+4 : off+4]
	if c.A == 255 {
		pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, 255
		return
	}
	a := uint32(c.A)
	mix := func(dst, src uint8) uint8 {
		return uint8(uint32(src) + uint32(dst)*(255-a)/255)
	}
	pix[0], pix[1], pix[2] = mix(pix[0], c.R), mix(pix[1], c.G), mix(pix[2], c.B)
	pix[3] = 255
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
