package breakout

import "github.com/vovakirdan/bricks/internal/core"

// Vector2 is a direction whose components are always -1 or +1.
type Vector2 struct {
	DX, DY int
}

// ReflectX flips the horizontal component.
func (v *Vector2) ReflectX() {
	v.DX = -v.DX
}

// ReflectY flips the vertical component.
func (v *Vector2) ReflectY() {
	v.DY = -v.DY
}

// Ball is the circular moving body. Its bounding box is 2*Radius square.
type Ball struct {
	Body
	Radius    float64
	Direction Vector2
	Speed     float64 // Distance per tick along each axis
	BaseSpeed float64
	SpeedStep float64 // Added to Speed for every brick hit
}

// NewBall creates a ball centered on (cx, cy) heading up and to the right.
func NewBall(id EntityID, cx, cy, radius, baseSpeed, speedStep float64) *Ball {
	return &Ball{
		Body:      Body{id: id, box: core.BoxAround(cx, cy, 2*radius, 2*radius)},
		Radius:    radius,
		Direction: Vector2{DX: 1, DY: -1},
		Speed:     baseSpeed,
		BaseSpeed: baseSpeed,
		SpeedStep: speedStep,
	}
}

// Kind returns KindBall.
func (b *Ball) Kind() Kind {
	return KindBall
}

// Update advances the ball one tick. Side and top walls reflect the
// direction before the move; the bottom edge is left open.
func (b *Ball) Update(fieldWidth float64) {
	if b.box.Left <= 0 || b.box.Right >= fieldWidth {
		b.Direction.ReflectX()
	}
	if b.box.Top <= 0 {
		b.Direction.ReflectY()
	}
	b.move(float64(b.Direction.DX)*b.Speed, float64(b.Direction.DY)*b.Speed)
}

// Collide resolves one collision event against the bodies overlapping the
// ball, in the order given. It returns the bricks that were hit.
//
// Several bodies at once always bounce vertically. A single body steers the
// ball by where its center lies: past the right edge sends it right, past the
// left edge sends it left, anything in between is a face hit.
func (b *Ball) Collide(bodies []Entity) []*Brick {
	switch {
	case len(bodies) > 1:
		b.Direction.ReflectY()
	case len(bodies) == 1:
		x := b.box.CenterX()
		other := bodies[0].Bounds()
		switch {
		case x > other.Right:
			b.Direction.DX = 1
		case x < other.Left:
			b.Direction.DX = -1
		default:
			b.Direction.ReflectY()
		}
	}

	var hit []*Brick
	for _, body := range bodies {
		brick, ok := body.AsBrick()
		if !ok {
			continue
		}
		brick.Hit()
		b.Speed += b.SpeedStep
		hit = append(hit, brick)
	}
	return hit
}

// Freeze stops the ball. Used for terminal and transitional states.
func (b *Ball) Freeze() {
	b.Speed = 0
}
