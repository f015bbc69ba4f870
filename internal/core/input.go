package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows frontends to share routing logic regardless of input device.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, Up, W, Enter, click, tap - start, jump or restart depending on state
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - save text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
