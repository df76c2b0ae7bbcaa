package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// IsSequenceSafe simulates following moves from state and reports whether the
// head can still reach the tail afterwards. Every move but the last retracts
// the tail; the last one eats the goal, so the body grows by one.
//
// The check is necessary for survival but not sufficient: on small or nearly
// full grids a sequence judged safe can still lead to a dead end later.
func (c *Controller) IsSequenceSafe(state State, moves []core.Direction) bool {
	t := newTrail(state.Body, len(moves))
	for i, m := range moves {
		t.step(m, i == len(moves)-1)
	}
	return c.searcher(state.Grid).Reachable(t.head(), t.tailCell(), t.mask(state.Grid))
}

// CanReachTail reports whether the head of body can reach its own tail.
func (c *Controller) CanReachTail(grid core.Grid, body []core.Cell) bool {
	mask := NewMask(grid, body)
	return c.searcher(grid).Reachable(body[0], body[len(body)-1], mask)
}
