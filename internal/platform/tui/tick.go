// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the timer that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// scheduler implements game.Scheduler on top of tea.Tick.
// The session calls Start and Stop from inside Update; the model then takes
// the pending command and hands it back to Bubble Tea. Every Start or Stop
// bumps the generation so ticks from an older timer are dropped.
type scheduler struct {
	gen      uint64
	interval time.Duration
	running  bool
	pending  tea.Cmd
}

func (s *scheduler) Start(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.running = true
	s.pending = s.tickCmd()
}

func (s *scheduler) Stop() {
	s.gen++
	s.running = false
	s.pending = nil
}

// accept reports whether msg came from the live timer.
func (s *scheduler) accept(msg TickMsg) bool {
	return s.running && msg.Gen == s.gen
}

// rearm schedules the next tick of the live timer unless a restart already did.
func (s *scheduler) rearm() {
	if s.running && s.pending == nil {
		s.pending = s.tickCmd()
	}
}

// take returns and clears the pending command.
func (s *scheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// tickCmd returns a Bubble Tea command that sends one tick after the interval.
func (s *scheduler) tickCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
