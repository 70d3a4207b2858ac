// Package interaction turns pointer events into map selection and detail card state.
//
// A Controller is not safe for concurrent use. Every method is expected to run on the single
// goroutine that drives the frame loop.
package interaction

import (
	"log"

	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
)

type State int

const (
	StateIdle State = iota
	StateDetailOpen
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateDetailOpen:
		return "DetailOpen"
	case StateDragging:
		return "Dragging"
	default:
		return "Idle"
	}
}

// FeatureFinder resolves a pointer position to a country outline.
type FeatureFinder interface {
	FeatureAtScreen(x, y float64, vp geo.Viewport) (*geo.Feature, bool)
}

// RecordLookup is the exact-name join against the population table.
type RecordLookup interface {
	Lookup(name string) (dataset.CountryRecord, bool)
}

// Selection is the country shown in the detail card.
type Selection struct {
	Name    string
	Data    dataset.CountryRecord
	Feature *geo.Feature
}

type Controller struct {
	features FeatureFinder
	records  RecordLookup

	viewport geo.Viewport
	view     DetailView
	selected *Selection
	dragging bool
	dragOffX float64
	dragOffY float64

	// Debug logs clicks that resolve to no country.
	Debug bool
}

func NewController(features FeatureFinder, records RecordLookup) *Controller {
	return &Controller{
		features: features,
		records:  records,
		view:     newDetailView(),
	}
}

func (c *Controller) State() State {
	switch {
	case !c.view.Open:
		return StateIdle
	case c.dragging:
		return StateDragging
	default:
		return StateDetailOpen
	}
}

// Selected returns the inspected country, or nil when the card is closed.
func (c *Controller) Selected() *Selection { return c.selected }

func (c *Controller) View() DetailView { return c.view }

func (c *Controller) Viewport() geo.Viewport { return c.viewport }

// SetViewport records the current surface size and pulls an open card back inside it.
func (c *Controller) SetViewport(vp geo.Viewport) {
	c.viewport = vp
	if c.view.Open {
		c.view.clamp(vp.Width, vp.Height)
	}
}

// Hover returns the feature under the pointer, if any.
func (c *Controller) Hover(x, y float64) (*geo.Feature, bool) {
	return c.features.FeatureAtScreen(x, y, c.viewport)
}

// Press handles a primary button press at screen position (x, y).
func (c *Controller) Press(x, y float64) {
	if c.view.Open {
		if c.view.CloseButton.Contains(x, y) {
			c.close()
			return
		}
		if c.view.Bounds().Contains(x, y) {
			c.dragging = true
			c.dragOffX = x - c.view.X
			c.dragOffY = y - c.view.Y
			return
		}
	}
	c.selectAt(x, y)
}

// Drag moves the card while a drag is active.
func (c *Controller) Drag(x, y float64) {
	if !c.dragging || !c.view.Open {
		return
	}
	c.view.X = x - c.dragOffX
	c.view.Y = y - c.dragOffY
	c.view.clamp(c.viewport.Width, c.viewport.Height)
}

// Release ends any drag. The card keeps its position.
func (c *Controller) Release() {
	c.dragging = false
}

func (c *Controller) close() {
	c.view.Open = false
	c.selected = nil
	c.dragging = false
	c.view.syncCloseButton()
}

func (c *Controller) selectAt(x, y float64) {
	f, ok := c.features.FeatureAtScreen(x, y, c.viewport)
	if !ok {
		if c.Debug {
			lon, lat := geo.ScreenToLonLat(x, y, c.viewport)
			log.Printf("[interaction] No country at (%.0f, %.0f) -> (%.2f, %.2f)", x, y, lon, lat)
		}
		return
	}
	rec, ok := c.records.Lookup(f.Name)
	if !ok {
		log.Printf("[interaction] No population data for %q", f.Name)
		return
	}

	c.selected = &Selection{Name: f.Name, Data: rec, Feature: f}
	if !c.view.Open {
		c.view.anchorBottomRight(c.viewport.Width, c.viewport.Height)
	}
	c.view.Open = true
	c.view.clamp(c.viewport.Width, c.viewport.Height)
}

// OverCard reports whether (x, y) falls on the open detail card.
func (c *Controller) OverCard(x, y float64) bool {
	return c.view.Open && c.view.Bounds().Contains(x, y)
}
