package game

import (
	"github.com/vovakirdan/tui-snake/internal/autopilot"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is a copy of everything the session tracks about the current game.
type State struct {
	Body      Body
	Direction core.Direction
	Goal      core.Cell
	Score     int
	HighScore int
	Paused    bool
	Over      bool
	Mode      Mode
}

// State returns a copy of the session state. Mutating it has no effect on
// the session.
func (s *Session) State() State {
	return State{
		Body:      s.body.Clone(),
		Direction: s.direction,
		Goal:      s.goal,
		Score:     s.score,
		HighScore: s.highScore,
		Paused:    s.phase == PhasePaused,
		Over:      s.phase == PhaseOver,
		Mode:      s.mode,
	}
}

// Snapshot captures the comparable part of the session for determinism
// testing and for the headless simulator's reports.
type Snapshot struct {
	Ticks     uint64
	Score     int
	HighScore int
	Length    int
	Head      core.Cell
	Goal      core.Cell
	Direction core.Direction
	Phase     Phase
	Mode      Mode
	Reason    autopilot.Reason
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     s.ticks,
		Score:     s.score,
		HighScore: s.highScore,
		Length:    len(s.body),
		Head:      s.body.Head(),
		Goal:      s.goal,
		Direction: s.direction,
		Phase:     s.phase,
		Mode:      s.mode,
		Reason:    s.ctrl.Last().Reason,
	}
}
