package breakout

import "github.com/vovakirdan/bricks/internal/core"

// ShapeKind is the primitive used to draw an entity.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a filled primitive in field coordinates, keyed by entity ID.
type Shape struct {
	ID    EntityID
	Kind  ShapeKind
	Box   core.Box
	Color core.Color
}

// Label names one of the text slots the session writes to.
type Label int

const (
	LabelLives Label = iota
	LabelScore
	LabelMessage
	LabelIndicator
)

// Text shown by the session.
const (
	MessageStart    = "Press Space to start"
	MessagePaused   = "Paused"
	MessageWon      = "You win! 🎉"
	MessageGameOver = "You Lose! 💀 Game Over!"
	IndicatorLost   = "😢"
)

// Display receives the drawing calls the session makes when its state
// changes. The session holds no rendering state of its own.
type Display interface {
	// DrawShape creates the shape, or updates it if the ID is known.
	DrawShape(s Shape)
	// Fill changes the color of an existing shape.
	Fill(id EntityID, c core.Color)
	// Delete removes a shape.
	Delete(id EntityID)
	SetText(l Label, text string)
	ClearText(l Label)
}

// NopDisplay discards every call. Used for headless runs.
type NopDisplay struct{}

func (NopDisplay) DrawShape(Shape) {}
func (NopDisplay) Fill(EntityID, core.Color) {}
func (NopDisplay) Delete(EntityID) {}
func (NopDisplay) SetText(Label, string) {}
func (NopDisplay) ClearText(Label) {}

// shapeOf returns how an entity is drawn.
func shapeOf(e Entity) Shape {
	s := Shape{ID: e.ID(), Kind: ShapeRect, Box: e.Bounds()}
	switch e.Kind() {
	case KindBall:
		s.Kind = ShapeCircle
		s.Color = core.ColorCrimson
	case KindPaddle:
		s.Color = core.ColorMaroon
	case KindBrick:
		if b, ok := e.AsBrick(); ok {
			s.Color = b.Color()
		}
	}
	return s
}
