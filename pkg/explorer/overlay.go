package explorer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sudorandom/population-explorer/pkg/choropleth"
	"github.com/sudorandom/population-explorer/pkg/interaction"
)

const (
	legendX      = 10.0
	legendWidth  = 230.0
	legendHeight = 170.0
	legendBottom = 190.0

	tooltipLineHeight = 16.0
	tooltipPadding    = 6.0

	chartOffsetY = 240.0
	chartRadius  = 110.0
)

var (
	colorBoxFill   = color.NRGBA{0, 0, 0, 180}
	colorBoxStroke = color.NRGBA{255, 255, 255, 255}
	colorMuted     = color.NRGBA{200, 200, 200, 255}
	colorCardFill  = color.NRGBA{30, 30, 30, 240}
	colorCardEdge  = color.NRGBA{255, 255, 255, 150}
	colorTipFill   = color.NRGBA{40, 40, 40, 220}
	colorCloseFill = color.NRGBA{200, 50, 50, 255}

	titleLines = []string{
		"Interactive visualization of global population data.",
		"• Hover over countries to see the name",
		"• Click to open demographic insights with spider chart",
		"• Compare data with global average",
	}
)

func (e *Engine) drawLegend(screen *ebiten.Image) {
	if e.fontSource == nil {
		return
	}
	lx, ly := legendX, float64(e.Height)-legendBottom
	vector.DrawFilledRect(screen, float32(lx), float32(ly), legendWidth, legendHeight, colorBoxFill, false)
	vector.StrokeRect(screen, float32(lx), float32(ly), legendWidth, legendHeight, 1, colorBoxStroke, false)

	drawText(screen, "Population 2025", lx+15, ly+12, &text.GoTextFace{Source: e.boldSource, Size: 14}, color.White, text.AlignStart)

	barX, barY, barW, barH := lx+15, ly+45, legendWidth-30, 20.0
	for i := 0; i < int(barW); i++ {
		c := choropleth.ScaleColor(float64(i) / barW)
		vector.DrawFilledRect(screen, float32(barX)+float32(i), float32(barY), 1, float32(barH), c, false)
	}

	small := &text.GoTextFace{Source: e.fontSource, Size: 11}
	for _, tick := range choropleth.LegendTicks {
		drawText(screen, tick.Label, barX+tick.T*barW, barY+barH+5, small, color.White, text.AlignCenter)
	}

	info := &text.GoTextFace{Source: e.fontSource, Size: 10}
	drawText(screen, fmt.Sprintf("Countries: %d", e.store.Len()), lx+15, ly+115, info, colorMuted, text.AlignStart)
	drawText(screen, fmt.Sprintf("Outlines: %d", e.atlas.Len()), lx+15, ly+130, info, colorMuted, text.AlignStart)
}

func (e *Engine) drawTitle(screen *ebiten.Image) {
	if e.fontSource == nil {
		return
	}
	tx, ty := legendX+legendWidth+320, float64(e.Height)-170
	drawText(screen, "World Population Explorer", tx, ty, &text.GoTextFace{Source: e.boldSource, Size: 36}, color.White, text.AlignStart)

	face := &text.GoTextFace{Source: e.fontSource, Size: 14}
	y := ty + 50
	for _, line := range titleLines {
		drawText(screen, line, tx, y, face, colorMuted, text.AlignStart)
		y += 20
	}
}

func (e *Engine) drawTooltip(screen *ebiten.Image, name string) {
	if e.fontSource == nil {
		return
	}
	rec, found := e.store.Lookup(name)
	lines := TooltipLines(name, rec, found, e.RichTooltip)

	bold := &text.GoTextFace{Source: e.boldSource, Size: 12}
	face := &text.GoTextFace{Source: e.fontSource, Size: 12}
	w := 0.0
	for i, line := range lines {
		f := face
		if i == 0 {
			f = bold
		}
		w = max(w, textWidth(line, f))
	}
	w += 2 * tooltipPadding
	h := float64(len(lines))*tooltipLineHeight + tooltipPadding

	fill := colorTipFill
	if !e.RichTooltip {
		fill = color.NRGBA{0, 0, 0, 200}
	}
	bx, by := PlaceTooltip(e.cursorX, e.cursorY, w, h, e.viewport())
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(w), float32(h), 1, colorBoxStroke, false)

	for i, line := range lines {
		f := face
		if i == 0 {
			f = bold
		}
		drawText(screen, line, bx+tooltipPadding, by+4+float64(i)*tooltipLineHeight, f, color.White, text.AlignStart)
	}
}

func (e *Engine) drawCard(screen *ebiten.Image) {
	sel := e.controller.Selected()
	if sel == nil || e.fontSource == nil {
		return
	}
	v := e.controller.View()
	x, y, w, h := float32(v.X), float32(v.Y), float32(v.Width), float32(v.Height)
	vector.DrawFilledRect(screen, x, y, w, h, colorCardFill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colorCardEdge, false)

	cb := v.CloseButton
	vector.DrawFilledRect(screen, float32(cb.X), float32(cb.Y), float32(cb.W), float32(cb.H), colorCloseFill, false)
	vector.StrokeRect(screen, float32(cb.X), float32(cb.Y), float32(cb.W), float32(cb.H), 1, colorBoxStroke, false)
	drawText(screen, "×", cb.X+cb.W/2, cb.Y+3, &text.GoTextFace{Source: e.boldSource, Size: 16}, color.White, text.AlignCenter)

	drawText(screen, CardTitle(sel.Name), v.X+15, v.Y+10, &text.GoTextFace{Source: e.boldSource, Size: 18}, color.White, text.AlignStart)

	face := &text.GoTextFace{Source: e.fontSource, Size: 12}
	for i, line := range CardLines(sel.Data) {
		drawText(screen, line, v.X+15, v.Y+40+float64(i)*20, face, colorMuted, text.AlignStart)
	}

	scores := e.normalizer.Scores(sel.Data)
	e.drawRadar(screen, Radar{
		CX:     v.X + v.Width/2,
		CY:     v.Y + chartOffsetY,
		Radius: chartRadius,
		Axes:   len(scores),
	}, scores)
}

// cardState is a compact description of the card for debug logging.
func cardState(c *interaction.Controller) string {
	sel := c.Selected()
	if sel == nil {
		return c.State().String()
	}
	v := c.View()
	return fmt.Sprintf("%s %q at (%.0f, %.0f)", c.State(), sel.Name, v.X, v.Y)
}
