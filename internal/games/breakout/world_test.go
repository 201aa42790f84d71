package breakout

import (
	"slices"
	"testing"
)

func TestWorldOverlappingTouchingEdges(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64 // ball center, radius 10
		want   bool
	}{
		{"touching on the right", 50, 100, true}, // ball 40..60, brick right 40
		{"touching from below", 30, 120, true},   // ball top 110, brick bottom 110
		{"touching corner", 50, 120, true},
		{"overlapping", 30, 100, true},
		{"just apart", 50.5, 100, false},
		{"far away", 300, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(610, 400)
			brick := NewBrick(w.NextID(), 30, 100, 20, 20, 1) // x 20..40, y 90..110
			w.Add(brick)
			ball := NewBall(w.NextID(), tc.cx, tc.cy, 10, 5, 0.1)
			w.Add(ball)

			got := w.Overlapping(ball.ID())
			if (len(got) == 1) != tc.want {
				t.Errorf("Overlapping() = %v, overlap expected %v", got, tc.want)
			}
		})
	}
}

func TestWorldOverlappingOrderAndSelf(t *testing.T) {
	w := NewWorld(610, 400)
	var ids []EntityID
	for _, cx := range []float64{117.5, 42.5} {
		b := NewBrick(w.NextID(), cx, 50, 75, 20, 1)
		w.Add(b)
		ids = append(ids, b.ID())
	}
	ball := NewBall(w.NextID(), 80, 65, 10, 5, 0.1)
	w.Add(ball)

	got := w.Overlapping(ball.ID())
	if !slices.Equal(got, ids) {
		t.Errorf("Overlapping() = %v, expected %v in creation order", got, ids)
	}
	if slices.Contains(got, ball.ID()) {
		t.Error("the ball should never overlap itself")
	}
}

func TestWorldSyncFollowsMoves(t *testing.T) {
	w := NewWorld(610, 400)
	paddle := NewPaddle(w.NextID(), 305, 326, 80, 10)
	w.Add(paddle)
	ball := NewBall(w.NextID(), 40, 315, 10, 5, 0.1) // x 30..50, y 305..325
	w.Add(ball)

	if len(w.Overlapping(ball.ID())) != 0 {
		t.Fatal("ball should start clear of the paddle")
	}

	for paddle.Move(-10, 610) {
		w.Sync(paddle)
	}
	if got := w.Overlapping(ball.ID()); !slices.Equal(got, []EntityID{paddle.ID()}) {
		t.Errorf("after moving the paddle under the ball, Overlapping() = %v", got)
	}
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld(610, 400)
	brick := NewBrick(w.NextID(), 30, 100, 20, 20, 1)
	w.Add(brick)
	ball := NewBall(w.NextID(), 30, 100, 10, 5, 0.1)
	w.Add(ball)

	if w.Bricks() != 1 || w.Len() != 2 {
		t.Fatalf("Bricks() = %d, Len() = %d", w.Bricks(), w.Len())
	}

	w.Remove(brick.ID())
	w.Remove(brick.ID())
	w.Remove(999)

	if w.Bricks() != 0 || w.Len() != 1 {
		t.Errorf("after remove: Bricks() = %d, Len() = %d", w.Bricks(), w.Len())
	}
	if _, ok := w.Lookup(brick.ID()); ok {
		t.Error("removed brick should not resolve")
	}
	if got := w.Overlapping(ball.ID()); len(got) != 0 {
		t.Errorf("removed brick is still collidable: %v", got)
	}
}

func TestWorldIDsAndResolve(t *testing.T) {
	w := NewWorld(610, 400)
	for range 5 {
		w.Add(NewBrick(w.NextID(), 100, 100, 10, 10, 1))
	}

	ids := w.IDs()
	if !slices.IsSorted(ids) || len(ids) != 5 {
		t.Errorf("IDs() = %v", ids)
	}

	got := w.Resolve(append(ids[:2:2], 42))
	if len(got) != 2 {
		t.Errorf("Resolve() should skip unknown IDs, got %d entities", len(got))
	}
}

func TestWorldEscapedBallStaysIndexed(t *testing.T) {
	w := NewWorld(610, 400)
	paddle := NewPaddle(w.NextID(), 305, 395, 80, 10)
	w.Add(paddle)
	ball := NewBall(w.NextID(), 305, 408, 10, 5, 0.1) // top 398, past the field
	w.Add(ball)

	if len(w.Overlapping(ball.ID())) != 1 {
		t.Error("a ball below the field edge should still find the paddle")
	}
}
