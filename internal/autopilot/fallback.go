package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// ChooseSafestMove picks a move when no safe route to the goal exists.
//
// Among the moves that do not collide immediately, it prefers the one after
// which the head can reach the tail by the longest shortest route (the first
// candidate in core.Directions order wins ties). If none keeps the tail
// reachable, the first non-colliding move is returned. The second result is
// false when every move collides.
func (c *Controller) ChooseSafestMove(state State) (core.Direction, bool) {
	d, reason := c.safestMove(state)
	return d, reason != ReasonStuck
}

func (c *Controller) safestMove(state State) (core.Direction, Reason) {
	head := state.Head()
	search := c.searcher(state.Grid)

	var best core.Direction
	bestLen := -1
	for _, d := range core.Directions {
		if Collides(state.Grid, state.Body, head.Add(d)) {
			continue
		}
		t := newTrail(state.Body, 1)
		t.step(d, false)
		dist, ok := search.Distance(t.head(), t.tailCell(), t.mask(state.Grid))
		if ok && dist > bestLen {
			bestLen = dist
			best = d
		}
	}
	if bestLen >= 0 {
		return best, ReasonSafest
	}

	for _, d := range core.Directions {
		if !Collides(state.Grid, state.Body, head.Add(d)) {
			return d, ReasonAnyMove
		}
	}
	return core.Direction{}, ReasonStuck
}
