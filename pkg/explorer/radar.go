package explorer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sudorandom/population-explorer/pkg/normalize"
)

const (
	radarRings       = 4
	radarLabelOffset = 25.0
	avgDash          = 8.0
	avgGap           = 6.0
)

var (
	colorGrid      = color.NRGBA{100, 100, 100, 100}
	colorAvgRing   = color.NRGBA{200, 80, 80, 150}
	colorAvgLabel  = color.NRGBA{220, 100, 100, 200}
	colorAreaFill  = color.NRGBA{100, 150, 255, 100}
	colorAreaLine  = color.NRGBA{100, 150, 255, 200}
	colorSubLabel  = color.NRGBA{200, 200, 200, 255}
	colorMetricDot = map[normalize.MetricID]color.NRGBA{
		normalize.MetricPopulation: {100, 150, 255, 255},
		normalize.MetricGrowth:     {100, 255, 100, 255},
		normalize.MetricDensity:    {255, 200, 100, 255},
		normalize.MetricYouth:      {255, 100, 150, 255},
		normalize.MetricUrban:      {150, 100, 255, 255},
		normalize.MetricFertility:  {255, 150, 100, 255},
	}
)

// Radar is the geometry of a spider chart centred on (CX, CY).
type Radar struct {
	CX, CY, Radius float64
	Axes           int
}

// Angle of axis i. Axis 0 points straight up and the rest follow clockwise.
func (r Radar) Angle(i int) float64 {
	return float64(i)*2*math.Pi/float64(r.Axes) - math.Pi/2
}

// Point is where a 0..100 score lands on axis i.
func (r Radar) Point(i int, score float64) (float64, float64) {
	a := r.Angle(i)
	d := r.Radius * normalize.Clamp(score, 0, 100) / 100
	return r.CX + math.Cos(a)*d, r.CY + math.Sin(a)*d
}

// LabelPoint is the anchor of the axis caption, just outside the outer ring.
func (r Radar) LabelPoint(i int) (float64, float64) {
	a := r.Angle(i)
	d := r.Radius + radarLabelOffset
	return r.CX + math.Cos(a)*d, r.CY + math.Sin(a)*d
}

// DashAngles splits a circle of the given radius into dash arcs of dash px separated by gap px.
// Each element is a start and end angle in radians. Partial trailing dashes are dropped.
func DashAngles(radius, dash, gap float64) [][2]float64 {
	if radius <= 0 || dash <= 0 || dash+gap <= 0 {
		return nil
	}
	n := int(math.Floor(2 * math.Pi * radius / (dash + gap)))
	out := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		start := float64(i) * (dash + gap) / radius
		out = append(out, [2]float64{start, start + dash/radius})
	}
	return out
}

func (e *Engine) drawRadar(screen *ebiten.Image, r Radar, scores []normalize.Score) {
	cx, cy := float32(r.CX), float32(r.CY)
	for i := 1; i <= radarRings; i++ {
		ring := r.Radius * float64(i) / radarRings
		if i == radarRings/2 {
			strokeDashedCircle(screen, r.CX, r.CY, ring, colorAvgRing)
			continue
		}
		vector.StrokeCircle(screen, cx, cy, float32(ring), 1, colorGrid, true)
	}

	for i, s := range scores {
		x, y := r.Point(i, 100)
		c := colorMetricDot[s.ID]
		c.A = 120
		vector.StrokeLine(screen, cx, cy, float32(x), float32(y), 2, c, true)
	}

	if e.fontSource != nil {
		face := &text.GoTextFace{Source: e.fontSource, Size: 8}
		drawText(screen, "World Avg", r.CX+r.Radius*0.5+5, r.CY-4, face, colorAvgLabel, text.AlignStart)
	}

	e.fillRadarArea(screen, r, scores)
	for i := range scores {
		x1, y1 := r.Point(i, scores[i].Value)
		x2, y2 := r.Point((i+1)%len(scores), scores[(i+1)%len(scores)].Value)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, colorAreaLine, true)
	}

	for i, s := range scores {
		x, y := r.Point(i, s.Value)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, colorMetricDot[s.ID], true)

		if e.boldSource == nil || e.fontSource == nil {
			continue
		}
		lx, ly := r.LabelPoint(i)
		drawText(screen, s.Label, lx, ly-6, &text.GoTextFace{Source: e.boldSource, Size: 10}, color.White, text.AlignCenter)
		drawText(screen, RelativeLabel(s), lx, ly+7, &text.GoTextFace{Source: e.fontSource, Size: 8}, colorSubLabel, text.AlignCenter)
	}
}

// fillRadarArea paints the score polygon as a triangle fan around the centre. The polygon is
// star-shaped around the centre so the fan covers it exactly.
func (e *Engine) fillRadarArea(screen *ebiten.Image, r Radar, scores []normalize.Score) {
	if len(scores) < 3 {
		return
	}
	cr, cg, cb, ca := float32(colorAreaFill.R)/255, float32(colorAreaFill.G)/255, float32(colorAreaFill.B)/255, float32(colorAreaFill.A)/255
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	vs := make([]ebiten.Vertex, 0, len(scores)+1)
	vs = append(vs, vertex(r.CX, r.CY))
	for i, s := range scores {
		vs = append(vs, vertex(r.Point(i, s.Value)))
	}
	is := make([]uint16, 0, len(scores)*3)
	for i := 1; i <= len(scores); i++ {
		next := i%len(scores) + 1
		is = append(is, 0, uint16(i), uint16(next))
	}
	screen.DrawTriangles(vs, is, e.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokeDashedCircle(screen *ebiten.Image, cx, cy, radius float64, c color.Color) {
	const steps = 4
	for _, d := range DashAngles(radius, avgDash, avgGap) {
		step := (d[1] - d[0]) / steps
		for k := 0; k < steps; k++ {
			a0, a1 := d[0]+float64(k)*step, d[0]+float64(k+1)*step
			vector.StrokeLine(screen,
				float32(cx+math.Cos(a0)*radius), float32(cy+math.Sin(a0)*radius),
				float32(cx+math.Cos(a1)*radius), float32(cy+math.Sin(a1)*radius),
				2, c, true)
		}
	}
}
