package present

import (
	stdimage "image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/render"
)

// KnobMargin is the narrowest a view may become, in cells, when the
// divider is dragged toward an edge.
const KnobMargin = 8

const (
	upperHalf = '▀'
	divider   = '│'
	knobRune  = '◆'
)

var (
	captionStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	dividerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	northStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	southStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
)

// Side names one of the two views.
type Side uint8

// Views.
const (
	Left Side = iota
	Right
)

// String returns the side name.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ClampKnob keeps a divider at column x at least margin cells from both
// edges of a screen width cells wide. When the screen is too narrow the
// divider is centered.
func ClampKnob(x, width, margin int) int {
	lo, hi := margin, width-1-margin
	if lo > hi {
		return width / 2
	}
	return min(max(x, lo), hi)
}

// Terminal is a split-screen display on a tcell screen. The bottom row is
// a status line.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	width   int
	height  int
	knob    int
	ratio   float64
	status  string
	regions [2]*Region
}

// NewTerminal lays out two views on screen. The screen must already be
// initialized.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen, ratio: 0.5}
	t.regions[Left] = &Region{term: t, side: Left}
	t.regions[Right] = &Region{term: t, side: Right}
	t.Resize()
	return t
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// View returns the surface for side.
func (t *Terminal) View(side Side) *Region {
	if side == Right {
		return t.regions[Right]
	}
	return t.regions[Left]
}

// Resize re-reads the screen size, keeps the divider at the same relative
// position and redraws the chrome.
func (t *Terminal) Resize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width, t.height = t.screen.Size()
	t.knob = ClampKnob(int(t.ratio*float64(t.width)), t.width, KnobMargin)
	t.screen.Clear()
	t.drawChromeLocked()
}

// Knob returns the divider column.
func (t *Terminal) Knob() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.knob
}

// SetKnob moves the divider to column x, clamped, and returns where it
// landed.
func (t *Terminal) SetKnob(x int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.knob = ClampKnob(x, t.width, KnobMargin)
	if t.width > 0 {
		t.ratio = float64(t.knob) / float64(t.width)
	}
	t.drawChromeLocked()
	return t.knob
}

// MoveKnob shifts the divider by delta columns.
func (t *Terminal) MoveKnob(delta int) int {
	return t.SetKnob(t.Knob() + delta)
}

// SetStatus replaces the status line.
func (t *Terminal) SetStatus(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
	t.drawStatusLocked()
}

// Show flushes pending cell changes to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// bounds returns the first column, the width in cells and the height in
// cells of a view.
func (t *Terminal) boundsLocked(side Side) (x0, cols, rows int) {
	rows = max(t.height-1, 0)
	if side == Left {
		return 0, max(t.knob, 0), rows
	}
	x0 = t.knob + 1
	return x0, max(t.width-x0, 0), rows
}

func (t *Terminal) drawChromeLocked() {
	_, _, rows := t.boundsLocked(Left)
	if t.knob >= 0 && t.knob < t.width {
		for y := range rows {
			r := divider
			if y == rows/2 {
				r = knobRune
			}
			t.screen.SetContent(t.knob, y, r, nil, dividerStyle)
		}
	}
	t.drawStatusLocked()
}

func (t *Terminal) drawStatusLocked() {
	if t.height == 0 {
		return
	}
	y := t.height - 1
	for x := range t.width {
		t.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
	drawText(t.screen, 0, y, t.width, t.status, statusStyle)
}

// drawText writes s from column x, cut at limit columns.
func drawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		if i >= limit {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// Region is one view of a Terminal. It implements render.Surface and
// render.Drawable; its pixel size is its width in cells by twice its
// height in cells.
type Region struct {
	term *Terminal
	side Side

	mu       sync.Mutex
	caption  string
	magnetic bool
	position render.CameraPosition
	heading  *float64
}

// Side returns which view this is.
func (r *Region) Side() Side { return r.side }

// Drawable returns the region while it has a non-empty area.
func (r *Region) Drawable() (render.Drawable, bool) {
	if r.Size().Empty() {
		return nil, false
	}
	return r, true
}

// Size returns the pixel size of the region.
func (r *Region) Size() image.Size {
	r.term.mu.Lock()
	defer r.term.mu.Unlock()
	_, cols, rows := r.term.boundsLocked(r.side)
	return image.Size{Width: cols, Height: rows * 2}
}

// SetCaption sets the text drawn on the top row.
func (r *Region) SetCaption(s string) {
	r.mu.Lock()
	r.caption = s
	r.mu.Unlock()
}

// Caption returns the caption text.
func (r *Region) Caption() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.caption
}

// SetMagnetic turns the pole markers on or off for a camera position.
func (r *Region) SetMagnetic(show bool, position render.CameraPosition) {
	r.mu.Lock()
	r.magnetic = show
	r.position = position
	r.mu.Unlock()
}

// SetHeading updates the compass heading in degrees. nil hides the
// markers.
func (r *Region) SetHeading(h *float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		r.heading = nil
		return
	}
	v := *h
	r.heading = &v
}

// Present draws img into the region's cells followed by the caption and
// pole markers.
func (r *Region) Present(img *stdimage.RGBA) error {
	r.mu.Lock()
	caption, magnetic, position := r.caption, r.magnetic, r.position
	var heading *float64
	if r.heading != nil {
		h := *r.heading
		heading = &h
	}
	r.mu.Unlock()

	t := r.term
	t.mu.Lock()
	defer t.mu.Unlock()

	x0, cols, rows := t.boundsLocked(r.side)
	b := img.Bounds()
	if b.Dx() != cols || b.Dy() != rows*2 {
		return render.ErrSizeMismatch
	}

	for cy := range rows {
		top := img.Pix[(2*cy)*img.Stride:]
		bottom := img.Pix[(2*cy+1)*img.Stride:]
		for cx := range cols {
			p, q := top[cx*4:], bottom[cx*4:]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(p[0]), int32(p[1]), int32(p[2]))).
				Background(tcell.NewRGBColor(int32(q[0]), int32(q[1]), int32(q[2])))
			t.screen.SetContent(x0+cx, cy, upperHalf, nil, style)
		}
	}

	if caption != "" && rows > 0 {
		drawText(t.screen, x0, 0, cols, caption, captionStyle)
	}
	if magnetic && heading != nil && rows > 1 {
		poles := render.PoleOffsets(*heading, position, float64(cols), 1)
		markerRow := rows / 2
		if render.Visible(poles.North, 1, float64(cols)) {
			t.screen.SetContent(x0+int(poles.North), markerRow, 'N', nil, northStyle)
		}
		if render.Visible(poles.South, 1, float64(cols)) {
			t.screen.SetContent(x0+int(poles.South), markerRow, 'S', nil, southStyle)
		}
	}

	t.screen.Show()
	return nil
}

var (
	_ render.Surface  = (*Region)(nil)
	_ render.Drawable = (*Region)(nil)
)
