package interaction

// Detail card geometry.
const (
	PanelWidth      = 350.0
	PanelHeight     = 400.0
	PanelMargin     = 20.0
	CloseButtonSize = 25.0
	closeInsetRight = 30.0
	closeInsetTop   = 5.0
)

type Rect struct {
	X, Y, W, H float64
}

// Contains is inclusive on every edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// DetailView is the draggable card. CloseButton always follows the card origin.
type DetailView struct {
	Open        bool
	X, Y        float64
	Width       float64
	Height      float64
	CloseButton Rect
}

func newDetailView() DetailView {
	v := DetailView{Width: PanelWidth, Height: PanelHeight}
	v.syncCloseButton()
	return v
}

func (v *DetailView) Bounds() Rect { return Rect{v.X, v.Y, v.Width, v.Height} }

func (v *DetailView) syncCloseButton() {
	v.CloseButton = Rect{
		X: v.X + v.Width - closeInsetRight,
		Y: v.Y + closeInsetTop,
		W: CloseButtonSize,
		H: CloseButtonSize,
	}
}

// anchorBottomRight places the card in its default spot for a viewport.
func (v *DetailView) anchorBottomRight(width, height float64) {
	v.X = width - v.Width - PanelMargin
	v.Y = height - v.Height - PanelMargin
}

// clamp keeps the card fully inside the viewport. When the viewport is smaller than the card the
// card is pinned to the top-left corner.
func (v *DetailView) clamp(width, height float64) {
	v.X = clampRange(v.X, 0, width-v.Width)
	v.Y = clampRange(v.Y, 0, height-v.Height)
	v.syncCloseButton()
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
