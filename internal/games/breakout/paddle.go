package breakout

import "github.com/vovakirdan/bricks/internal/core"

// Paddle is the player-controlled body. Before launch it carries the ball.
type Paddle struct {
	Body
	ball *Ball // Not owned; set only while the ball rests on the paddle
}

// NewPaddle creates a paddle centered on (cx, cy).
func NewPaddle(id EntityID, cx, cy, width, height float64) *Paddle {
	return &Paddle{
		Body: Body{id: id, box: core.BoxAround(cx, cy, width, height)},
	}
}

// Kind returns KindPaddle.
func (p *Paddle) Kind() Kind {
	return KindPaddle
}

// Move slides the paddle by offset if it stays within [0, fieldWidth].
// Otherwise nothing moves. An attached ball follows. It reports whether the
// paddle moved.
func (p *Paddle) Move(offset, fieldWidth float64) bool {
	if !p.box.Translate(offset, 0).WithinX(0, fieldWidth) {
		return false
	}
	p.move(offset, 0)
	if p.ball != nil {
		p.ball.move(offset, 0)
	}
	return true
}

// Attach makes the ball rest on the paddle.
func (p *Paddle) Attach(b *Ball) {
	p.ball = b
}

// Detach releases the ball.
func (p *Paddle) Detach() {
	p.ball = nil
}

// Attached returns the resting ball, or nil.
func (p *Paddle) Attached() *Ball {
	return p.ball
}
