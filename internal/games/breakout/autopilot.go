package breakout

import "github.com/vovakirdan/bricks/internal/core"

// Autopilot plays by keeping the paddle under the ball.
// It is deterministic so headless runs can be replayed.
type Autopilot struct {
	// Deadband is how far the ball may drift from the paddle center before
	// the paddle follows.
	Deadband float64
}

// Next picks the action for the current state.
func (a Autopilot) Next(snap Snapshot) core.Action {
	switch snap.State {
	case StateWaitingToLaunch.String():
		return core.ActionLaunch
	case StateRunning.String(), StateRoundLost.String():
		diff := snap.BallCenterX() - snap.PaddleCenterX()
		switch {
		case diff > a.Deadband:
			return core.ActionRight
		case diff < -a.Deadband:
			return core.ActionLeft
		}
	}
	return core.ActionNone
}
