package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// FindPathToGoal returns the first move of the shortest route from the head
// to the goal, provided following that whole route keeps the tail
// reachable. It returns false when there is no route or the route is unsafe.
func (c *Controller) FindPathToGoal(state State) (core.Direction, bool) {
	moves, ok := c.shortestToGoal(state)
	if !ok || len(moves) == 0 {
		return core.Direction{}, false
	}
	if !c.IsSequenceSafe(state, moves) {
		return core.Direction{}, false
	}
	return moves[0], true
}

func (c *Controller) shortestToGoal(state State) ([]core.Direction, bool) {
	if !state.Grid.InBounds(state.Goal) {
		return nil, false
	}
	mask := NewMask(state.Grid, state.Body)
	return c.searcher(state.Grid).Path(state.Head(), state.Goal, mask)
}
