package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Command is one discrete input event.
type Command int

const (
	CmdNone       Command = iota
	CmdUp                 // steer up (manual mode)
	CmdDown               // steer down (manual mode)
	CmdLeft               // steer left (manual mode)
	CmdRight              // steer right (manual mode)
	CmdPause              // toggle Running/Paused
	CmdToggleMode         // switch between autopilot and manual control
	CmdAny                // any other key; restarts after game over
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdPause:
		return "Pause"
	case CmdToggleMode:
		return "ToggleMode"
	case CmdAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// direction returns the move a steering command asks for.
func (c Command) direction() (core.Direction, bool) {
	switch c {
	case CmdUp:
		return core.Up, true
	case CmdDown:
		return core.Down, true
	case CmdLeft:
		return core.Left, true
	case CmdRight:
		return core.Right, true
	}
	return core.Direction{}, false
}

// Mode says who steers the snake.
type Mode int

const (
	ModeAutonomous Mode = iota
	ModeManual
)

// String returns the HUD label for the mode.
func (m Mode) String() string {
	if m == ModeManual {
		return "Player"
	}
	return "AI"
}

// ParseMode converts "ai"/"autonomous" or "player"/"manual" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "ai", "autonomous", "AI":
		return ModeAutonomous, true
	case "player", "manual", "Player":
		return ModeManual, true
	}
	return ModeAutonomous, false
}

// Phase is the session state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}
