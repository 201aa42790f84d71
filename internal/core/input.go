package core

// Action represents a semantic game action, abstracted from physical key presses.
// Each action maps to exactly one session operation.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left by one step
	ActionRight          // Right arrow, D - move paddle right by one step
	ActionLaunch         // Space - release the ball from the paddle
	ActionPause          // P - pause/unpause
	ActionRestart        // R - start over after the game ended
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
