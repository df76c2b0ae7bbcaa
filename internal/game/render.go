package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2

// Frame is a Sink that keeps the most recently painted board and draws it,
// with the HUD and overlays, onto a core.Screen.
type Frame struct {
	cellSize int
	cells    []Paint
}

// NewFrame creates a frame that draws each grid cell cellSize characters wide.
func NewFrame(cellSize int) *Frame {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Frame{cellSize: cellSize}
}

// Paint stores the board for the next Render.
func (f *Frame) Paint(cells []Paint) {
	f.cells = cells
}

// Cells returns the last painted board.
func (f *Frame) Cells() []Paint {
	return f.cells
}

// Size returns the screen area needed to draw grid: the HUD, the border and
// the board.
func (f *Frame) Size(grid core.Grid) (w, h int) {
	return grid.Cols*f.cellSize + 2, grid.Rows + 2 + hudHeight
}

// Render draws the last painted board and the state in snap onto dst.
func (f *Frame) Render(dst *core.Screen, grid core.Grid, snap Snapshot) {
	dst.Clear()

	w, h := f.Size(grid)
	if dst.Width() < w || dst.Height() < h {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	renderHUD(dst, snap)

	offX := (dst.Width() - w) / 2
	offY := hudHeight
	dst.DrawBox(offX, offY, w, grid.Rows+2)

	for _, p := range f.cells {
		glyph, color := style(p.Tag)
		x := offX + 1 + p.Cell.X*f.cellSize
		y := offY + 1 + p.Cell.Y
		for i := range f.cellSize {
			dst.SetColored(x+i, y, glyph, color)
		}
	}

	switch snap.Phase {
	case PhaseOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press any key to restart")
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func style(tag Tag) (rune, core.Color) {
	switch tag {
	case TagGoal:
		return '█', core.ColorRed
	case TagHead:
		return '█', core.ColorGreen
	default:
		return '▓', core.ColorDarkGreen
	}
}

// renderHUD draws the status line and its separator.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  High: %d  Mode: %s", snap.Score, snap.HighScore, snap.Mode)
	if snap.Mode == ModeAutonomous && snap.Phase == PhaseRunning {
		hud += fmt.Sprintf("  [%s]", snap.Reason)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered box holding lines.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l)
	}
}
