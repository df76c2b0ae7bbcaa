package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, mode game.Mode) Model {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Mode = mode
	return NewModel(Options{
		Game:     cfg,
		CellSize: 2,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 7},
		Store:    game.NewMemoryStore(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestSchedulerGenerations(t *testing.T) {
	s := &scheduler{}
	s.Start(20 * time.Millisecond)
	first := TickMsg{Gen: s.gen}
	assert.True(t, s.accept(first))
	assert.NotNil(t, s.take())
	assert.Nil(t, s.take())

	s.Stop()
	assert.False(t, s.accept(first))
	s.rearm()
	assert.Nil(t, s.take(), "stopped timer must not rearm")

	s.Start(100 * time.Millisecond)
	assert.False(t, s.accept(first), "tick from a replaced timer")
	assert.True(t, s.accept(TickMsg{Gen: s.gen}))
	assert.Equal(t, 100*time.Millisecond, s.interval)
}

func TestKeyMapCommands(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want game.Command
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, game.CmdUp},
		{runes("s"), game.CmdDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, game.CmdLeft},
		{runes("d"), game.CmdRight},
		{runes("p"), game.CmdPause},
		{runes("m"), game.CmdToggleMode},
		{runes("x"), game.CmdAny},
		{tea.KeyMsg{Type: tea.KeyEnter}, game.CmdAny},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, k.Command(tt.msg), tt.msg.String())
	}
}

func TestInitStartsTicking(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	assert.NotNil(t, m.Init())
}

func TestTickAdvancesSession(t *testing.T) {
	m := newTestModel(t, game.ModeManual)
	m.Init()

	m, cmd := update(t, m, TickMsg{Gen: m.sched.gen})
	assert.NotNil(t, cmd, "next tick scheduled")
	assert.Equal(t, uint64(1), m.Session().Snapshot().Ticks)

	m, cmd = update(t, m, TickMsg{Gen: m.sched.gen - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1), m.Session().Snapshot().Ticks, "stale tick ignored")
}

func TestPauseKeyStopsTicks(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	m.Init()
	gen := m.sched.gen

	m, _ = update(t, m, runes("p"))
	assert.Equal(t, game.PhasePaused, m.Session().Phase())
	assert.Contains(t, m.View(), "Paused")

	m, cmd := update(t, m, TickMsg{Gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), m.Session().Snapshot().Ticks)

	m, cmd = update(t, m, runes("p"))
	assert.NotNil(t, cmd, "resume restarts the timer")
	assert.Equal(t, game.PhaseRunning, m.Session().Phase())
}

func TestModeToggleRestartsTimer(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	m.Init()
	assert.Equal(t, 20*time.Millisecond, m.sched.interval)

	m, cmd := update(t, m, runes("m"))
	assert.NotNil(t, cmd)
	assert.Equal(t, game.ModeManual, m.Session().Mode())
	assert.Equal(t, 100*time.Millisecond, m.sched.interval)
	assert.Contains(t, m.View(), "Mode: Player")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestSmallWindowPauses(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, game.PhasePaused, m.Session().Phase())
	assert.Contains(t, m.View(), "Window too small")
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m := newTestModel(t, game.ModeAutonomous)
	view := m.View()

	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Mode: AI")
	assert.Contains(t, view, "quit")
	assert.GreaterOrEqual(t, strings.Count(view, "\n"), 24)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "abc")
	s.SetColored(4, 0, '█', core.ColorGreen)
	s.DrawTextColored(0, 1, "xyz", core.ColorRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "xyz")
}
