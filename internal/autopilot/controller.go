package autopilot

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Reason records which rule produced a decision.
type Reason int

const (
	ReasonPath    Reason = iota // first step of a safe shortest route to the goal
	ReasonSafest                // fallback: longest head-to-tail distance
	ReasonAnyMove               // fallback: tail unreachable, first non-colliding move
	ReasonStuck                 // every move collides; direction left unchanged
)

// String returns a short label for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonPath:
		return "path"
	case ReasonSafest:
		return "safest"
	case ReasonAnyMove:
		return "any-move"
	case ReasonStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one DecideMove call.
type Decision struct {
	Direction core.Direction
	Reason    Reason
}

// Controller chooses the autopilot's move each tick.
// It keeps only reusable search buffers and the last decision; it never
// touches the game state it is given.
type Controller struct {
	search *Searcher
	logger *log.Logger
	last   Decision
}

// NewController creates a controller. A nil logger discards output.
func NewController(logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{logger: logger}
}

// DecideMove returns the direction to travel this tick: the safe route to the
// goal if there is one, otherwise the fallback choice, otherwise the current
// direction (the snake is boxed in and the next tick will end the session).
func (c *Controller) DecideMove(state State) core.Direction {
	dec := c.decide(state)
	c.last = dec
	c.logger.Debug("autopilot decision",
		"head", state.Head(),
		"goal", state.Goal,
		"dir", dec.Direction,
		"reason", dec.Reason,
	)
	return dec.Direction
}

func (c *Controller) decide(state State) Decision {
	if d, ok := c.FindPathToGoal(state); ok {
		return Decision{Direction: d, Reason: ReasonPath}
	}
	d, reason := c.safestMove(state)
	if reason == ReasonStuck {
		d = state.Direction
	}
	return Decision{Direction: d, Reason: reason}
}

// Last returns the most recent decision.
func (c *Controller) Last() Decision {
	return c.last
}

// searcher returns a searcher sized for grid, replacing the cached one when
// the grid changed.
func (c *Controller) searcher(grid core.Grid) *Searcher {
	if c.search == nil || c.search.Grid() != grid {
		c.search = NewSearcher(grid)
	}
	return c.search
}
