// Package breakout implements the brick breaker simulation: the entities,
// the collision rules and the session state machine that drives them.
package breakout

import "github.com/vovakirdan/bricks/internal/core"

// EntityID identifies an entity in a World. IDs are assigned in creation
// order and never reused within a session.
type EntityID uint32

// Kind tells entities apart without inspecting their concrete type.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBrick
)

// String returns the kind name. It doubles as the spatial index tag.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Entity is anything with a bounding box taking part in collisions.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Bounds() core.Box
	// AsBrick returns the brick behind the entity, if it is one.
	AsBrick() (*Brick, bool)
}

// Body is a positioned bounding box that only ever moves by translation.
// Ball, Paddle and Brick embed it.
type Body struct {
	id  EntityID
	box core.Box
}

// ID returns the entity identifier.
func (b *Body) ID() EntityID {
	return b.id
}

// Bounds returns the current bounding box.
func (b *Body) Bounds() core.Box {
	return b.box
}

// AsBrick reports false; Brick overrides it.
func (b *Body) AsBrick() (*Brick, bool) {
	return nil, false
}

// move translates the body by (dx, dy).
func (b *Body) move(dx, dy float64) {
	b.box = b.box.Translate(dx, dy)
}
