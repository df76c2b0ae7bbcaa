// Package game implements the snake session: the body, the goal, scoring and
// the Running/Paused/Over state machine. It drives the autopilot when the
// session is in autonomous mode and talks to the outside world only through
// the Store, Sink and Scheduler interfaces.
package game

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Body is the ordered list of snake segments, head at index 0.
type Body []core.Cell

// Head returns the first segment.
func (b Body) Head() core.Cell {
	return b[0]
}

// Tail returns the last segment.
func (b Body) Tail() core.Cell {
	return b[len(b)-1]
}

// Contains reports whether any segment occupies c.
func (b Body) Contains(c core.Cell) bool {
	for _, seg := range b {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (b Body) Clone() Body {
	out := make(Body, len(b))
	copy(out, b)
	return out
}

// push adds a new head.
func (b *Body) push(c core.Cell) {
	*b = append(*b, core.Cell{})
	copy((*b)[1:], (*b)[:len(*b)-1])
	(*b)[0] = c
}

// pop removes the tail.
func (b *Body) pop() {
	*b = (*b)[:len(*b)-1]
}

// Validate checks the body invariant: at least one segment, all inside the
// grid, all distinct, and consecutive segments one step apart.
func (b Body) Validate(grid core.Grid) error {
	if len(b) == 0 {
		return errors.New("game: empty body")
	}

	seen := mapset.New[core.Cell]()
	for i, c := range b {
		if !grid.InBounds(c) {
			return fmt.Errorf("game: segment %d at %v is outside the grid", i, c)
		}
		if seen.Has(c) {
			return fmt.Errorf("game: segment %d at %v overlaps another segment", i, c)
		}
		seen.Put(c)
		if i > 0 && core.Manhattan(b[i-1], c) != 1 {
			return fmt.Errorf("game: segments %d %v and %d %v are not adjacent", i-1, b[i-1], i, c)
		}
	}
	return nil
}
