package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bricks/internal/core"
)

func TestCanvasRetainsShapes(t *testing.T) {
	c := NewCanvas(610, 400)
	c.DrawShape(Shape{ID: 1, Kind: ShapeRect, Box: core.Box{Left: 5, Top: 40, Right: 80, Bottom: 60}, Color: core.ColorPeach})

	c.Fill(1, core.ColorCoral)
	if s, _ := c.Shape(1); s.Color != core.ColorCoral {
		t.Errorf("Fill() did not update the color: %v", s.Color)
	}
	c.Fill(2, core.ColorCoral)
	if c.Len() != 1 {
		t.Error("Fill() on an unknown shape should not create one")
	}

	c.Delete(1)
	if c.Len() != 0 {
		t.Error("Delete() should drop the shape")
	}
}

func TestCanvasRenderSession(t *testing.T) {
	_, _, canvas := newTestSession(t)

	dst := core.NewScreen(80, 24)
	canvas.Render(dst)

	out := dst.String()
	for _, want := range []string{"Lives: 3", "Score: 0", MessageStart} {
		if !strings.Contains(out, want) {
			t.Errorf("render should contain %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("render should contain the ball")
	}

	peach, maroon := 0, 0
	for y := range dst.Height() {
		for x := range dst.Width() {
			switch dst.GetCell(x, y).Color {
			case core.ColorPeach:
				peach++
			case core.ColorMaroon:
				maroon++
			}
		}
	}
	if peach == 0 || maroon == 0 {
		t.Errorf("bricks (%d peach cells) and paddle (%d maroon cells) should be drawn", peach, maroon)
	}
}

func TestCanvasRenderClipsToField(t *testing.T) {
	c := NewCanvas(610, 400)
	c.DrawShape(Shape{ID: 1, Kind: ShapeRect, Box: core.Box{Left: -50, Top: 390, Right: 700, Bottom: 450}, Color: core.ColorMaroon})
	c.DrawShape(Shape{ID: 2, Kind: ShapeCircle, Box: core.Box{Left: 300, Top: 410, Right: 320, Bottom: 430}, Color: core.ColorCrimson})

	dst := core.NewScreen(80, 24)
	c.Render(dst)

	if dst.Get(0, 0) != '┌' || dst.Get(79, 23) != '┘' {
		t.Error("the border should survive shapes drawn past the field")
	}
	if strings.ContainsRune(dst.String(), BallChar) {
		t.Error("a ball below the field should not be drawn")
	}
}

func TestCanvasTooSmall(t *testing.T) {
	c := NewCanvas(610, 400)
	dst := core.NewScreen(30, 10)
	c.Render(dst)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected the too-small message:\n%s", dst.String())
	}
}

func TestCanvasIndicatorLift(t *testing.T) {
	c := NewCanvas(610, 400)
	c.SetText(LabelIndicator, IndicatorLost)

	dst := core.NewScreen(80, 24)
	c.Render(dst)
	rest := rowOf(dst, IndicatorLost)

	c.SetIndicatorLift(3)
	c.Render(dst)
	if got := rowOf(dst, IndicatorLost); got != rest-3 {
		t.Errorf("lifted indicator on row %d, expected %d", got, rest-3)
	}

	c.ClearText(LabelIndicator)
	c.Render(dst)
	if rowOf(dst, IndicatorLost) != -1 {
		t.Error("cleared indicator should not be drawn")
	}
}

func rowOf(s *core.Screen, text string) int {
	for y := range s.Height() {
		if strings.Contains(s.Row(y), text) {
			return y
		}
	}
	return -1
}
