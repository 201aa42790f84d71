package breakout

import "math"

// Snapshot is a read-only view of the session state.
// Uses primitive types only so it can be compared and hashed.
type Snapshot struct {
	Tick   uint64
	State  string
	Paused bool
	Score  int
	Lives  int

	PaddleLeft   float64
	PaddleRight  float64
	PaddleTop    float64
	BallLeft     float64
	BallTop      float64
	BallRight    float64
	BallBottom   float64
	BallDX       int
	BallDY       int
	BallSpeed    float64
	BallAttached bool

	BricksRemaining int

	// Brick states in creation order, 2 ints each: ID, hits remaining.
	BrickData []int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	paddle := s.paddle.Bounds()
	ball := s.ball.Bounds()

	brickData := make([]int, 0, s.world.Bricks()*2)
	for _, id := range s.world.IDs() {
		e, _ := s.world.Lookup(id)
		if b, ok := e.AsBrick(); ok {
			brickData = append(brickData, int(id), b.Hits())
		}
	}

	return Snapshot{
		Tick:   s.ticks,
		State:  s.state.String(),
		Paused: s.paused,
		Score:  s.score,
		Lives:  s.lives,

		PaddleLeft:   paddle.Left,
		PaddleRight:  paddle.Right,
		PaddleTop:    paddle.Top,
		BallLeft:     ball.Left,
		BallTop:      ball.Top,
		BallRight:    ball.Right,
		BallBottom:   ball.Bottom,
		BallDX:       s.ball.Direction.DX,
		BallDY:       s.ball.Direction.DY,
		BallSpeed:    s.ball.Speed,
		BallAttached: s.paddle.Attached() != nil,

		BricksRemaining: s.world.Bricks(),
		BrickData:       brickData,
	}
}

// BallCenterX returns the horizontal center of the ball.
func (snap *Snapshot) BallCenterX() float64 {
	return (snap.BallLeft + snap.BallRight) * 0.5
}

// PaddleCenterX returns the horizontal center of the paddle.
func (snap *Snapshot) PaddleCenterX() float64 {
	return (snap.PaddleLeft + snap.PaddleRight) * 0.5
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleLeft)
	h = h*31 + math.Float64bits(snap.PaddleTop)
	h = h*31 + math.Float64bits(snap.BallLeft)
	h = h*31 + math.Float64bits(snap.BallTop)
	h = h*31 + uint64(snap.BallDX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallSpeed)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
