// Package explorer is the interactive population map: an ebiten game that paints the choropleth
// and routes pointer input through the interaction controller.
package explorer

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sudorandom/population-explorer/pkg/choropleth"
	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
	"github.com/sudorandom/population-explorer/pkg/interaction"
	"github.com/sudorandom/population-explorer/pkg/normalize"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorHover     = color.NRGBA{255, 255, 255, 200}
	colorSelection = color.NRGBA{255, 220, 80, 255}
)

type Options struct {
	Width, Height int
	RichTooltip   bool
	CaptureDir    string
	Debug         bool
}

type Engine struct {
	Width, Height   int
	RichTooltip     bool
	FrameCaptureDir string

	atlas      *geo.Atlas
	store      *dataset.Store
	controller *interaction.Controller
	normalizer normalize.Normalizer

	mapImage   *ebiten.Image
	mapW, mapH int
	white      *ebiten.Image

	hovered          *geo.Feature
	cursorX, cursorY float64
	captureNext      bool
	debug            bool

	fontSource *text.GoTextFaceSource
	boldSource *text.GoTextFaceSource
}

func NewEngine(atlas *geo.Atlas, store *dataset.Store, opts Options) *Engine {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[explorer] Error loading regular font: %v", err)
	}
	b, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[explorer] Error loading bold font: %v", err)
		b = s
	}

	c := interaction.NewController(atlas, store)
	c.Debug = opts.Debug
	e := &Engine{
		RichTooltip:     opts.RichTooltip,
		FrameCaptureDir: opts.CaptureDir,
		atlas:           atlas,
		store:           store,
		controller:      c,
		normalizer:      normalize.New(store.Averages()),
		fontSource:      s,
		boldSource:      b,
		debug:           opts.Debug,
	}
	e.resize(opts.Width, opts.Height)
	return e
}

// Controller exposes the selection state, mainly for tests and tools.
func (e *Engine) Controller() *interaction.Controller { return e.controller }

func (e *Engine) viewport() geo.Viewport {
	return geo.Viewport{Width: float64(e.Width), Height: float64(e.Height)}
}

func (e *Engine) resize(w, h int) {
	e.Width, e.Height = w, h
	e.controller.SetViewport(e.viewport())
}

func (e *Engine) Update() error {
	x, y := ebiten.CursorPosition()
	e.handlePointer(float64(x), float64(y),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		e.captureNext = true
	}
	return nil
}

// handlePointer feeds one tick of pointer state into the controller and refreshes the hover target.
func (e *Engine) handlePointer(x, y float64, pressed, held, released bool) {
	moved := x != e.cursorX || y != e.cursorY
	e.cursorX, e.cursorY = x, y

	switch {
	case pressed:
		e.controller.Press(x, y)
		if e.debug {
			log.Printf("[explorer] Press at (%.0f, %.0f): %s", x, y, cardState(e.controller))
		}
	case held && moved:
		e.controller.Drag(x, y)
	}
	if released {
		e.controller.Release()
	}

	e.hovered = nil
	if e.controller.State() == interaction.StateDragging || e.controller.OverCard(x, y) {
		return
	}
	if f, ok := e.controller.Hover(x, y); ok {
		e.hovered = f
	}
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(choropleth.ColorBackground)
	e.drawMap(screen)

	if e.hovered != nil {
		e.strokeFeature(screen, e.hovered, colorHover, 1)
	}
	if sel := e.controller.Selected(); sel != nil {
		e.strokeFeature(screen, sel.Feature, colorSelection, 2)
	}

	e.drawLegend(screen)
	e.drawTitle(screen)
	if e.hovered != nil {
		e.drawTooltip(screen, e.hovered.Name)
	}
	e.drawCard(screen)

	if e.captureNext {
		e.captureNext = false
		e.captureFrame(screen, "frame", time.Now())
	}
}

// Layout follows the outside size so the map is re-rendered on window resize.
func (e *Engine) Layout(w, h int) (int, int) {
	if w != e.Width || h != e.Height {
		e.resize(w, h)
	}
	return w, h
}

// drawMap paints the cached choropleth layer, rasterising it again when the size changed.
func (e *Engine) drawMap(screen *ebiten.Image) {
	if e.mapImage == nil || e.mapW != e.Width || e.mapH != e.Height {
		if e.mapImage != nil {
			e.mapImage.Deallocate()
			e.mapImage = nil
		}
		start := time.Now()
		img := choropleth.RenderMap(e.atlas, e.store, e.viewport())
		if img.Bounds().Empty() {
			return
		}
		e.mapImage = ebiten.NewImageFromImage(img)
		e.mapW, e.mapH = e.Width, e.Height
		log.Printf("[explorer] Rendered map layer at %dx%d in %s", e.Width, e.Height, time.Since(start).Round(time.Millisecond))
	}
	screen.DrawImage(e.mapImage, nil)
}

func (e *Engine) strokeFeature(screen *ebiten.Image, f *geo.Feature, c color.Color, width float32) {
	if f == nil {
		return
	}
	for _, poly := range geo.ProjectFeature(f, e.viewport()) {
		if len(poly) == 0 {
			continue
		}
		ring := poly[0]
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
		}
	}
}

// whitePixel is the 1x1 source texture for DrawTriangles.
func (e *Engine) whitePixel() *ebiten.Image {
	if e.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		e.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return e.white
}

func drawText(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

func textWidth(s string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}
