package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// node is one BFS queue entry. Nodes live in an arena slice and refer to
// their predecessor by arena index, so a search allocates nothing per node.
type node struct {
	cell   int32 // flat grid index
	parent int32 // arena index of the predecessor, -1 for the start
	move   int8  // index into core.Directions of the step that reached cell
	dist   int32
}

// Searcher runs breadth-first searches over one grid.
// Its buffers are sized once for the grid and reused by every call; a
// Searcher is not safe for concurrent use.
type Searcher struct {
	grid    core.Grid
	visited bitset
	arena   []node
}

// NewSearcher creates a searcher for grid.
func NewSearcher(grid core.Grid) *Searcher {
	return &Searcher{
		grid:    grid,
		visited: newBitset(grid.Size()),
		arena:   make([]node, 0, grid.Size()),
	}
}

// Grid returns the grid the searcher was sized for.
func (s *Searcher) Grid() core.Grid {
	return s.grid
}

// Path returns the shortest sequence of moves from start to target that
// avoids mask. The second result is false when target is unreachable.
// A start equal to target yields an empty path.
func (s *Searcher) Path(start, target core.Cell, mask *Mask) ([]core.Direction, bool) {
	end := s.run(start, target, mask)
	if end < 0 {
		return nil, false
	}

	moves := make([]core.Direction, s.arena[end].dist)
	for i := end; s.arena[i].parent >= 0; i = int(s.arena[i].parent) {
		n := s.arena[i]
		moves[n.dist-1] = core.Directions[n.move]
	}
	return moves, true
}

// Distance returns the number of moves on a shortest route from start to
// target, or false when target is unreachable.
func (s *Searcher) Distance(start, target core.Cell, mask *Mask) (int, bool) {
	end := s.run(start, target, mask)
	if end < 0 {
		return 0, false
	}
	return int(s.arena[end].dist), true
}

// Reachable reports whether target can be reached from start.
func (s *Searcher) Reachable(start, target core.Cell, mask *Mask) bool {
	return s.run(start, target, mask) >= 0
}

// run expands level by level from start and returns the arena index of the
// node for target, or -1. The start cell itself is never tested against the
// mask: it is where the head already is.
func (s *Searcher) run(start, target core.Cell, mask *Mask) int {
	if !s.grid.InBounds(start) || !s.grid.InBounds(target) {
		return -1
	}

	s.visited.clear()
	s.arena = s.arena[:0]

	startIdx := s.grid.Index(start)
	targetIdx := int32(s.grid.Index(target))
	s.visited.set(startIdx)
	s.arena = append(s.arena, node{cell: int32(startIdx), parent: -1, move: -1})

	for head := 0; head < len(s.arena); head++ {
		cur := s.arena[head]
		if cur.cell == targetIdx {
			return head
		}

		c := s.grid.CellAt(int(cur.cell))
		for i, d := range core.Directions {
			next := c.Add(d)
			if mask.Blocked(next) {
				continue
			}
			idx := s.grid.Index(next)
			if s.visited.has(idx) {
				continue
			}
			s.visited.set(idx)
			s.arena = append(s.arena, node{
				cell:   int32(idx),
				parent: int32(head),
				move:   int8(i),
				dist:   cur.dist + 1,
			})
		}
	}
	return -1
}
