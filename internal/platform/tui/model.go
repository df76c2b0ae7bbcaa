package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configures the game screen.
type Options struct {
	Game     game.Config
	CellSize int
	Runtime  core.RuntimeConfig
	Store    game.Store
	Logger   *log.Logger
}

// Model is the Bubble Tea model for playing snake.
type Model struct {
	session  *game.Session
	frame    *game.Frame
	sched    *scheduler
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts the first game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := game.NewFrame(opts.CellSize)
	sched := &scheduler{}
	session := game.NewSession(opts.Game, game.Options{
		Seed:      cfg.Seed,
		Store:     opts.Store,
		Sink:      frame,
		Scheduler: sched,
		Logger:    logger,
	})

	return Model{
		session: session,
		frame:   frame,
		sched:   sched,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Session returns the game the model drives.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.sched.take()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.session.Handle(m.keys.Command(msg))
	return m, m.sched.take()
}

// handleResize processes window resize events. The board keeps its size; a
// window too small for it pauses a running game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width

	w, h := m.frame.Size(m.session.Grid())
	if (msg.Width < w || msg.Height-1 < h) && m.session.Phase() == game.PhaseRunning {
		m.session.Handle(game.CmdPause)
	}
	return m, m.sched.take()
}

// handleTick runs one simulation step if the tick came from the live timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accept(msg) {
		return m, nil
	}
	m.session.Tick()
	m.sched.rearm()
	return m, m.sched.take()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.frame.Render(m.screen, m.session.Grid(), m.session.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame.Render(m.screen, m.session.Grid(), m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
