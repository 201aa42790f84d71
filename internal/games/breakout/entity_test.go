package breakout

import (
	"testing"

	"github.com/vovakirdan/bricks/internal/core"
)

const testFieldW = 610

func TestBallReflectsOffWalls(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		dir    Vector2
		want   Vector2
	}{
		{"left wall", 10, 200, Vector2{-1, -1}, Vector2{1, -1}},
		{"past left wall", 8, 200, Vector2{-1, 1}, Vector2{1, 1}},
		{"right wall", 600, 200, Vector2{1, 1}, Vector2{-1, 1}},
		{"top wall", 300, 10, Vector2{1, -1}, Vector2{1, 1}},
		{"corner", 10, 10, Vector2{-1, -1}, Vector2{1, 1}},
		{"bottom is open", 300, 395, Vector2{1, 1}, Vector2{1, 1}},
		{"open field", 300, 200, Vector2{-1, -1}, Vector2{-1, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(1, tc.cx, tc.cy, 10, 5, 0.1)
			b.Direction = tc.dir
			b.Update(testFieldW)
			if b.Direction != tc.want {
				t.Errorf("direction = %+v, expected %+v", b.Direction, tc.want)
			}
		})
	}
}

func TestBallUpdateMoves(t *testing.T) {
	b := NewBall(1, 305, 310, 10, 5, 0.1)
	b.Update(testFieldW)

	want := core.Box{Left: 300, Top: 295, Right: 320, Bottom: 315}
	if b.Bounds() != want {
		t.Errorf("Bounds() = %+v, expected %+v", b.Bounds(), want)
	}
}

func TestBallCollideSteering(t *testing.T) {
	paddle := NewPaddle(1, 305, 326, 80, 10) // x 265..345

	tests := []struct {
		name string
		cx   float64
		dir  Vector2
		want Vector2
	}{
		{"right of right edge", 350, Vector2{-1, 1}, Vector2{1, 1}},
		{"right of right edge keeps +1", 350, Vector2{1, 1}, Vector2{1, 1}},
		{"left of left edge", 260, Vector2{1, 1}, Vector2{-1, 1}},
		{"on the face", 305, Vector2{1, 1}, Vector2{1, -1}},
		{"on the right edge", 345, Vector2{-1, 1}, Vector2{-1, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(2, tc.cx, 315, 10, 5, 0.1)
			b.Direction = tc.dir
			hit := b.Collide([]Entity{paddle})
			if b.Direction != tc.want {
				t.Errorf("direction = %+v, expected %+v", b.Direction, tc.want)
			}
			if len(hit) != 0 || b.Speed != 5 {
				t.Error("the paddle should not count as a brick hit")
			}
		})
	}
}

func TestBallCollideMultipleReflectsVertically(t *testing.T) {
	left := NewBrick(1, 42.5, 50, 75, 20, 2)
	right := NewBrick(2, 117.5, 50, 75, 20, 1)
	b := NewBall(3, 80, 70, 10, 5, 0.1)
	b.Direction = Vector2{1, -1}

	hit := b.Collide([]Entity{left, right})

	if b.Direction != (Vector2{1, 1}) {
		t.Errorf("direction = %+v, expected vertical bounce only", b.Direction)
	}
	if len(hit) != 2 {
		t.Fatalf("hit %d bricks, expected 2", len(hit))
	}
	if left.Hits() != 1 || !right.Destroyed() {
		t.Errorf("hits after collide: left %d, right %d", left.Hits(), right.Hits())
	}
	if got, want := b.Speed, 5.2; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("speed = %v, expected %v (one step per brick)", got, want)
	}
}

func TestBallCollideNothing(t *testing.T) {
	b := NewBall(1, 300, 200, 10, 5, 0.1)
	before := *b
	if hit := b.Collide(nil); hit != nil {
		t.Errorf("Collide(nil) returned %v", hit)
	}
	if b.Direction != before.Direction || b.Speed != before.Speed {
		t.Error("an empty collision should change nothing")
	}
}

func TestBallFreeze(t *testing.T) {
	b := NewBall(1, 300, 200, 10, 5, 0.1)
	b.Freeze()
	if b.Speed != 0 {
		t.Errorf("Speed = %v after Freeze", b.Speed)
	}
	b.Update(testFieldW)
	if b.Bounds().CenterX() != 300 {
		t.Error("a frozen ball should not move")
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	p := NewPaddle(1, 305, 326, 80, 10)

	// Walk far left, then far right, with uneven steps.
	steps := []float64{-10, -10, -7, -30, -100, -10}
	for range 40 {
		steps = append(steps, -10)
	}
	for range 80 {
		steps = append(steps, 10, 13)
	}

	for i, off := range steps {
		p.Move(off, testFieldW)
		b := p.Bounds()
		if b.Left < 0 || b.Right > testFieldW {
			t.Fatalf("step %d: paddle left field: %+v", i, b)
		}
	}
}

func TestPaddleMoveAllOrNothing(t *testing.T) {
	p := NewPaddle(1, 45, 326, 80, 10) // x 5..85

	if p.Move(-10, testFieldW) {
		t.Error("a move past the left wall should be rejected")
	}
	if p.Bounds().Left != 5 {
		t.Errorf("rejected move should not be partially applied, left = %v", p.Bounds().Left)
	}
	if !p.Move(-5, testFieldW) || p.Bounds().Left != 0 {
		t.Errorf("a move ending exactly at the wall should apply, left = %v", p.Bounds().Left)
	}
}

func TestPaddleCarriesAttachedBall(t *testing.T) {
	p := NewPaddle(1, 305, 326, 80, 10)
	b := NewBall(2, 305, 310, 10, 5, 0.1)
	p.Attach(b)

	p.Move(10, testFieldW)
	if b.Bounds().CenterX() != 315 {
		t.Errorf("attached ball center = %v, expected 315", b.Bounds().CenterX())
	}

	p.Detach()
	if p.Attached() != nil {
		t.Error("Detach should clear the ball")
	}
	p.Move(10, testFieldW)
	if b.Bounds().CenterX() != 315 {
		t.Error("a detached ball should not follow the paddle")
	}
}

func TestBrickHits(t *testing.T) {
	one := NewBrick(1, 0, 0, 75, 20, 1)
	if !one.Hit() || !one.Destroyed() {
		t.Error("a 1-hit brick should be destroyed by one hit")
	}

	three := NewBrick(2, 0, 0, 75, 20, 3)
	if three.Color() != core.ColorPeach {
		t.Errorf("3-hit color = %v", three.Color())
	}
	if three.Hit() {
		t.Error("a 3-hit brick should survive one hit")
	}
	if three.Hits() != 2 || three.Color() != core.ColorSalmon {
		t.Errorf("after one hit: hits %d, color %v", three.Hits(), three.Color())
	}
	three.Hit()
	if three.Color() != core.ColorCoral {
		t.Errorf("1-hit color = %v", three.Color())
	}
	if !three.Hit() {
		t.Error("third hit should destroy the brick")
	}
}

func TestNewBrickClampsHits(t *testing.T) {
	if h := NewBrick(1, 0, 0, 1, 1, 9).Hits(); h != MaxHits {
		t.Errorf("hits = %d, expected %d", h, MaxHits)
	}
	if h := NewBrick(1, 0, 0, 1, 1, 0).Hits(); h != 1 {
		t.Errorf("hits = %d, expected 1", h)
	}
}

func TestAsBrick(t *testing.T) {
	entities := []Entity{
		NewBall(1, 0, 0, 10, 5, 0),
		NewPaddle(2, 0, 0, 80, 10),
		NewBrick(3, 0, 0, 75, 20, 1),
	}
	for _, e := range entities {
		_, ok := e.AsBrick()
		if ok != (e.Kind() == KindBrick) {
			t.Errorf("%v: AsBrick() ok = %v", e.Kind(), ok)
		}
	}
}
