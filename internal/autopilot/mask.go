// Package autopilot plays the snake game on its own.
//
// Every tick the Controller looks for the shortest route from the head to the
// goal and takes its first step only if, after following the whole route and
// eating, the head can still reach the tail. When no such route exists it
// falls back to the move that keeps the longest head-to-tail distance.
// All searches are breadth-first over dense bitsets indexed by x + y*cols,
// and every function here is a pure function of the State it is given.
package autopilot

import "github.com/vovakirdan/tui-snake/internal/core"

// bitset is a dense set of flat grid indices.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) clear() {
	for i := range b {
		b[i] = 0
	}
}

// Mask marks the cells a move may not enter.
// It is built from a body: every segment except the tail is blocked, because
// the tail vacates its cell on the same tick the head could step into it.
type Mask struct {
	grid core.Grid
	bits bitset
}

// NewMask builds the obstacle mask for body (head first).
func NewMask(grid core.Grid, body []core.Cell) *Mask {
	m := &Mask{grid: grid, bits: newBitset(grid.Size())}
	m.fill(body, len(body)-1)
	return m
}

// fill blocks every cell of cells except the one at index skip.
func (m *Mask) fill(cells []core.Cell, skip int) {
	m.bits.clear()
	for i, c := range cells {
		if i == skip || !m.grid.InBounds(c) {
			continue
		}
		m.bits.set(m.grid.Index(c))
	}
}

// Blocked reports whether the head may not enter c. Cells outside the grid
// are always blocked.
func (m *Mask) Blocked(c core.Cell) bool {
	if !m.grid.InBounds(c) {
		return true
	}
	return m.bits.has(m.grid.Index(c))
}

// Collides reports whether moving the head of body onto next ends the game:
// next is outside the grid or lands on a segment other than the head and the
// tail.
func Collides(grid core.Grid, body []core.Cell, next core.Cell) bool {
	if !grid.InBounds(next) {
		return true
	}
	for i := 1; i < len(body)-1; i++ {
		if body[i] == next {
			return true
		}
	}
	return false
}
