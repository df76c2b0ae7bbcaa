package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyValidate(t *testing.T) {
	grid := core.NewGrid(5, 5)
	tests := []struct {
		name    string
		body    Body
		wantErr bool
	}{
		{"single", Body{{X: 2, Y: 2}}, false},
		{"line", Body{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, false},
		{"empty", Body{}, true},
		{"outside", Body{{X: 5, Y: 0}}, true},
		{"overlap", Body{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 1}}, true},
		{"gap", Body{{X: 0, Y: 0}, {X: 2, Y: 0}}, true},
		{"diagonal", Body{{X: 0, Y: 0}, {X: 1, Y: 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate(grid)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBodyPushPop(t *testing.T) {
	b := Body{{X: 1, Y: 0}, {X: 0, Y: 0}}
	b.push(core.Cell{X: 2, Y: 0})
	if len(b) != 3 || b.Head() != (core.Cell{X: 2, Y: 0}) || b.Tail() != (core.Cell{X: 0, Y: 0}) {
		t.Fatalf("push: got %v", b)
	}
	b.pop()
	if len(b) != 2 || b.Tail() != (core.Cell{X: 1, Y: 0}) {
		t.Fatalf("pop: got %v", b)
	}
}

func TestBodyCloneIsIndependent(t *testing.T) {
	b := Body{{X: 1, Y: 1}}
	c := b.Clone()
	c[0] = core.Cell{X: 3, Y: 3}
	if b[0] != (core.Cell{X: 1, Y: 1}) {
		t.Errorf("original modified: %v", b)
	}
}
