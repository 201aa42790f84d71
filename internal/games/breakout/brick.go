package breakout

import "github.com/vovakirdan/bricks/internal/core"

// MaxHits is the highest brick durability.
const MaxHits = 3

// Brick is a destructible body with one to three hits remaining.
type Brick struct {
	Body
	hits int
}

// NewBrick creates a brick centered on (cx, cy). hits is clamped to [1, MaxHits].
func NewBrick(id EntityID, cx, cy, width, height float64, hits int) *Brick {
	return &Brick{
		Body: Body{id: id, box: core.BoxAround(cx, cy, width, height)},
		hits: min(max(hits, 1), MaxHits),
	}
}

// Kind returns KindBrick.
func (b *Brick) Kind() Kind {
	return KindBrick
}

// AsBrick returns the brick itself.
func (b *Brick) AsBrick() (*Brick, bool) {
	return b, true
}

// Hit takes one hit and reports whether the brick is now destroyed.
func (b *Brick) Hit() bool {
	if b.hits > 0 {
		b.hits--
	}
	return b.hits == 0
}

// Hits returns the remaining hits.
func (b *Brick) Hits() int {
	return b.hits
}

// Destroyed reports whether the brick has no hits left.
func (b *Brick) Destroyed() bool {
	return b.hits == 0
}

// Color returns the fill color of the current tier.
func (b *Brick) Color() core.Color {
	return TierColor(b.hits)
}

// TierColor maps remaining hits to a fill color.
func TierColor(hits int) core.Color {
	switch hits {
	case 1:
		return core.ColorCoral
	case 2:
		return core.ColorSalmon
	case 3:
		return core.ColorPeach
	default:
		return core.ColorDefault
	}
}
