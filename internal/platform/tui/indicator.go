package tui

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// indicatorRise is how many rows the life-lost indicator floats up.
const indicatorRise = 3

// indicatorLift animates the life-lost indicator rising from its anchor.
type indicatorLift struct {
	tween  *gween.Tween
	rows   int
	active bool
}

// Start begins a rise that completes after d.
func (a *indicatorLift) Start(d time.Duration) {
	a.tween = gween.New(0, indicatorRise, float32(d.Seconds()), ease.OutQuad)
	a.rows = 0
	a.active = true
}

// Step advances the animation by dt and returns the current lift in rows
// and whether the animation is still running.
func (a *indicatorLift) Step(dt time.Duration) (int, bool) {
	if !a.active {
		return a.rows, false
	}
	v, done := a.tween.Update(float32(dt.Seconds()))
	a.rows = int(math.Round(float64(v)))
	if done {
		a.active = false
	}
	return a.rows, a.active
}

// Stop ends the animation and resets the lift.
func (a *indicatorLift) Stop() {
	a.tween = nil
	a.rows = 0
	a.active = false
}

// Active reports whether the animation is running.
func (a *indicatorLift) Active() bool {
	return a.active
}
