package core

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(20, 15)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{19, 14}, true},
		{"center", Cell{10, 7}, true},
		{"left of grid", Cell{-1, 5}, false},
		{"above grid", Cell{5, -1}, false},
		{"right edge (exclusive)", Cell{20, 5}, false},
		{"bottom edge (exclusive)", Cell{5, 15}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	seen := make(map[int]bool)

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := Cell{x, y}
			i := g.Index(c)
			if i < 0 || i >= g.Size() {
				t.Fatalf("Index(%v) = %d, outside [0, %d)", c, i, g.Size())
			}
			if seen[i] {
				t.Fatalf("Index(%v) = %d collides with another cell", c, i)
			}
			seen[i] = true
			if back := g.CellAt(i); back != c {
				t.Errorf("CellAt(%d) = %v, expected %v", i, back, c)
			}
		}
	}
}

func TestDirectionOppositeAndParallel(t *testing.T) {
	pairs := []struct {
		d, opposite Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, p := range pairs {
		if p.d.Opposite() != p.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", p.d, p.d.Opposite(), p.opposite)
		}
		if !p.d.Parallel(p.opposite) || !p.d.Parallel(p.d) {
			t.Errorf("%v should be parallel to itself and %v", p.d, p.opposite)
		}
	}

	if Up.Parallel(Left) || Right.Parallel(Down) {
		t.Error("perpendicular directions should not be parallel")
	}
}

func TestDirectionsOrder(t *testing.T) {
	expected := []Direction{Up, Down, Left, Right}
	for i, d := range Directions {
		if d != expected[i] {
			t.Errorf("Directions[%d] = %v, expected %v", i, d, expected[i])
		}
		if d.IsZero() {
			t.Errorf("Directions[%d] is the zero vector", i)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, expected %v", d.String(), got, d)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(Cell{1, 2}, Cell{4, 6}); got != 7 {
		t.Errorf("Manhattan = %d, expected 7", got)
	}
	if got := Manhattan(Cell{3, 3}, Cell{3, 3}); got != 0 {
		t.Errorf("Manhattan of equal cells = %d, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
