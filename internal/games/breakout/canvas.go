package breakout

import (
	"fmt"
	"math"
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/bricks/internal/core"
)

// Minimum terminal size the canvas can draw the field in.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	FillChar = '█'
	BallChar = '●'
)

// labelAnchors place each label as a fraction of the field size.
var labelAnchors = map[Label]struct{ X, Y float64 }{
	LabelLives:     {0.08, 0.05},
	LabelScore:     {0.25, 0.05},
	LabelMessage:   {0.5, 0.5},
	LabelIndicator: {0.5, 0.5},
}

// Canvas is a retained Display: it remembers every shape and label the
// session drew and renders them onto a screen buffer on demand, scaling
// field units to cells.
type Canvas struct {
	fieldW, fieldH float64
	shapes         map[EntityID]Shape
	labels         map[Label]string
	indicatorLift  int
}

// NewCanvas creates an empty canvas for a field of the given size.
func NewCanvas(fieldW, fieldH float64) *Canvas {
	return &Canvas{
		fieldW: fieldW,
		fieldH: fieldH,
		shapes: make(map[EntityID]Shape),
		labels: make(map[Label]string),
	}
}

// DrawShape implements Display.
func (c *Canvas) DrawShape(s Shape) {
	c.shapes[s.ID] = s
}

// Fill implements Display.
func (c *Canvas) Fill(id EntityID, color core.Color) {
	if s, ok := c.shapes[id]; ok {
		s.Color = color
		c.shapes[id] = s
	}
}

// Delete implements Display.
func (c *Canvas) Delete(id EntityID) {
	delete(c.shapes, id)
}

// SetText implements Display.
func (c *Canvas) SetText(l Label, text string) {
	c.labels[l] = text
}

// ClearText implements Display.
func (c *Canvas) ClearText(l Label) {
	delete(c.labels, l)
}

// Shape returns a retained shape.
func (c *Canvas) Shape(id EntityID) (Shape, bool) {
	s, ok := c.shapes[id]
	return s, ok
}

// Len returns the number of retained shapes.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// Text returns the content of a label, or "" if it is not shown.
func (c *Canvas) Text(l Label) string {
	return c.labels[l]
}

// SetIndicatorLift raises the indicator label by rows above its anchor.
func (c *Canvas) SetIndicatorLift(rows int) {
	c.indicatorLift = max(rows, 0)
}

// Render draws the canvas onto dst.
func (c *Canvas) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(w/2, h/2-1, "Window too small", core.ColorText)
		dst.DrawTextCentered(w/2, h/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	dst.DrawBox(core.NewRect(0, 0, w, h), core.ColorGray)
	inner := core.NewRect(1, 1, w-2, h-2)

	ids := make([]EntityID, 0, len(c.shapes))
	for id := range c.shapes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		c.drawShape(dst, inner, c.shapes[id])
	}

	for _, l := range []Label{LabelLives, LabelScore, LabelIndicator} {
		text, ok := c.labels[l]
		if !ok {
			continue
		}
		x, y := c.anchor(inner, l)
		if l == LabelIndicator {
			y = max(y-c.indicatorLift, inner.Y)
		}
		dst.DrawTextCentered(x, y, text, core.ColorText)
	}

	if msg, ok := c.labels[LabelMessage]; ok {
		x, y := c.anchor(inner, LabelMessage)
		drawCenteredBox(dst, x, y, msg)
	}
}

// drawShape draws one shape clipped to the field area.
func (c *Canvas) drawShape(dst *core.Screen, inner core.Rect, s Shape) {
	sx := float64(inner.W) / c.fieldW
	sy := float64(inner.H) / c.fieldH

	x0 := inner.X + int(math.Floor(s.Box.Left*sx))
	x1 := inner.X + int(math.Floor(s.Box.Right*sx))
	y0 := inner.Y + int(math.Floor(s.Box.Top*sy))
	y1 := inner.Y + int(math.Floor(s.Box.Bottom*sy))

	if s.Kind == ShapeCircle {
		cx := inner.X + int(s.Box.CenterX()*sx)
		cy := inner.Y + int(s.Box.CenterY()*sy)
		if cx >= inner.X && cx < inner.Right() && cy >= inner.Y && cy < inner.Bottom() {
			dst.SetCell(cx, cy, BallChar, s.Color)
		}
		return
	}

	// Keep a one-cell gap so neighbouring bricks stay apart.
	if x1-x0 >= 3 {
		x1--
	}
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0, x1 = max(x0, inner.X), min(x1, inner.Right())
	y0, y1 = max(y0, inner.Y), min(y1, inner.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), FillChar, s.Color)
}

// anchor returns the cell a label is centered on.
func (c *Canvas) anchor(inner core.Rect, l Label) (int, int) {
	a := labelAnchors[l]
	return inner.X + int(a.X*float64(inner.W)), inner.Y + int(a.Y*float64(inner.H))
}

// drawCenteredBox draws a message box centered on (cx, cy).
func drawCenteredBox(dst *core.Screen, cx, cy int, title string) {
	boxW := runewidth.StringWidth(title) + 4
	boxH := 3
	boxX := cx - boxW/2
	boxY := cy - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorText)
	dst.DrawText(boxX+2, boxY+1, title, core.ColorText)
}
