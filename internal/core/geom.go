// Package core provides fundamental types shared by the game, the autopilot
// and the terminal platform. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Cell is a grid coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Manhattan returns the grid distance between two cells.
func Manhattan(a, b Cell) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Direction is a unit step on the grid. The zero value is not a valid move.
type Direction struct {
	DX, DY int
}

// The four legal moves.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions is the fixed expansion and candidate order used everywhere a
// search or a choice has to be reproducible.
var Directions = [4]Direction{Up, Down, Left, Right}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Parallel reports whether d and o lie on the same axis (same or opposite).
func (d Direction) Parallel(o Direction) bool {
	return (d.DX != 0 && o.DX != 0) || (d.DY != 0 && o.DY != 0)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("core: unknown direction %q", s)
}

// Grid is the fixed-size playing field.
type Grid struct {
	Cols, Rows int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(cols, rows int) Grid {
	return Grid{Cols: cols, Rows: rows}
}

// InBounds returns true if c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Index linearizes an in-bounds cell to x + y*Cols.
func (g Grid) Index(c Cell) int {
	return c.X + c.Y*g.Cols
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.Cols, Y: i / g.Cols}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
