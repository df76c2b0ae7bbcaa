package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the point-in-time snapshot the autopilot decides from.
// Body is read, never modified.
type State struct {
	Grid      core.Grid
	Body      []core.Cell // head at index 0, tail last
	Direction core.Direction
	Goal      core.Cell
}

// Head returns the first body segment.
func (s State) Head() core.Cell {
	return s.Body[0]
}

// Tail returns the last body segment.
func (s State) Tail() core.Cell {
	return s.Body[len(s.Body)-1]
}

// trail is a simulated body stored tail first, so that pushing a head is an
// append and popping the tail advances an offset. It is the copy the oracle
// and the fallback mutate instead of the real body.
type trail struct {
	cells []core.Cell
	tail  int
}

// newTrail copies body into a trail with room for extra pushes.
func newTrail(body []core.Cell, extra int) *trail {
	cells := make([]core.Cell, len(body), len(body)+extra)
	for i, c := range body {
		cells[len(body)-1-i] = c
	}
	return &trail{cells: cells}
}

func (t *trail) head() core.Cell {
	return t.cells[len(t.cells)-1]
}

func (t *trail) tailCell() core.Cell {
	return t.cells[t.tail]
}

// step moves the head one cell in d. The tail stays put when grow is set.
func (t *trail) step(d core.Direction, grow bool) {
	t.cells = append(t.cells, t.head().Add(d))
	if !grow {
		t.tail++
	}
}

// mask returns the obstacle mask of the simulated body.
func (t *trail) mask(grid core.Grid) *Mask {
	m := &Mask{grid: grid, bits: newBitset(grid.Size())}
	live := t.cells[t.tail:]
	m.fill(live, 0) // index 0 of the live window is the tail
	return m
}
