package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/autopilot"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// NoGoal is the goal position once the body covers the whole grid.
var NoGoal = core.Cell{X: -1, Y: -1}

// Config holds the rules of a session.
type Config struct {
	Grid               core.Grid
	Start              core.Cell
	StartDirection     core.Direction
	GoalPoints         int
	AutonomousInterval time.Duration
	ManualInterval     time.Duration
	Mode               Mode
}

// DefaultConfig returns the classic 20x20 board.
func DefaultConfig() Config {
	return Config{
		Grid:               core.NewGrid(20, 20),
		Start:              core.Cell{X: 10, Y: 10},
		StartDirection:     core.Right,
		GoalPoints:         10,
		AutonomousInterval: 20 * time.Millisecond,
		ManualInterval:     100 * time.Millisecond,
		Mode:               ModeAutonomous,
	}
}

// Options wires a session to its collaborators. All fields are optional.
type Options struct {
	Seed      int64
	Store     Store
	Sink      Sink
	Scheduler Scheduler
	Logger    *log.Logger
}

// Session owns the body, goal, score and phase of one game and the
// transitions between games. It is not safe for concurrent use; callers
// serialize Handle and Tick.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	ctrl   *autopilot.Controller
	store  Store
	sink   Sink
	sched  Scheduler
	logger *log.Logger

	body      Body
	direction core.Direction // last executed move
	pending   core.Direction // next manual move
	goal      core.Cell
	score     int
	highScore int
	ticks     uint64
	phase     Phase
	mode      Mode
	runID     uuid.UUID
	lastRun   *Run
}

// NewSession creates a session, loads the high score and starts the first
// game.
func NewSession(cfg Config, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = nopScheduler{}
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		ctrl:   autopilot.NewController(logger.WithPrefix("autopilot")),
		store:  opts.Store,
		sink:   opts.Sink,
		sched:  sched,
		logger: logger,
		mode:   cfg.Mode,
	}
	s.highScore = s.loadHighScore()
	s.Reset()
	return s
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	v, ok, err := s.store.Get(HighScoreKey)
	if err != nil {
		s.logger.Warn("failed to load high score", "error", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

// Reset starts a new game with the current mode.
func (s *Session) Reset() {
	s.body = Body{s.cfg.Start}
	s.direction = s.cfg.StartDirection
	s.pending = s.cfg.StartDirection
	s.score = 0
	s.ticks = 0
	s.phase = PhaseRunning
	s.runID = uuid.New()
	s.placeGoal()

	s.sched.Start(s.interval())
	s.logger.Debug("reset", "run", s.runID, "mode", s.mode, "goal", s.goal)
	s.paint()
}

// Handle applies one input command.
// While the game is over every command starts a new game.
func (s *Session) Handle(cmd Command) {
	if cmd == CmdNone {
		return
	}
	if s.phase == PhaseOver {
		s.Reset()
		return
	}

	switch cmd {
	case CmdPause:
		s.togglePause()
	case CmdToggleMode:
		s.toggleMode()
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		if s.mode != ModeManual || s.phase != PhaseRunning {
			return
		}
		d, _ := cmd.direction()
		if len(s.body) >= 2 && d.Parallel(s.direction) {
			return
		}
		s.pending = d
	}
}

func (s *Session) togglePause() {
	if s.phase == PhasePaused {
		s.phase = PhaseRunning
		s.sched.Start(s.interval())
		return
	}
	s.phase = PhasePaused
	s.sched.Stop()
}

func (s *Session) toggleMode() {
	if s.mode == ModeAutonomous {
		s.mode = ModeManual
		s.pending = s.direction
	} else {
		s.mode = ModeAutonomous
	}
	s.logger.Debug("mode changed", "mode", s.mode)
	if s.phase == PhaseRunning {
		s.sched.Start(s.interval())
	}
}

func (s *Session) interval() time.Duration {
	if s.mode == ModeManual {
		return s.cfg.ManualInterval
	}
	return s.cfg.AutonomousInterval
}

// Tick advances the game by one move. It does nothing unless running.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}
	s.ticks++

	dir := s.pending
	if s.mode == ModeAutonomous {
		dir = s.ctrl.DecideMove(s.autopilotState())
	}

	next := s.body.Head().Add(dir)
	if autopilot.Collides(s.cfg.Grid, s.body, next) {
		s.direction = dir
		s.over()
		s.paint()
		return
	}

	s.direction = dir
	s.pending = dir
	s.body.push(next)
	if next == s.goal {
		s.score += s.cfg.GoalPoints
		s.placeGoal()
	} else {
		s.body.pop()
	}
	s.paint()
}

func (s *Session) autopilotState() autopilot.State {
	return autopilot.State{
		Grid:      s.cfg.Grid,
		Body:      s.body,
		Direction: s.direction,
		Goal:      s.goal,
	}
}

// placeGoal picks a random free cell by rejection sampling.
func (s *Session) placeGoal() {
	if len(s.body) >= s.cfg.Grid.Size() {
		s.goal = NoGoal
		return
	}
	for {
		c := core.Cell{X: s.rng.Intn(s.cfg.Grid.Cols), Y: s.rng.Intn(s.cfg.Grid.Rows)}
		if !s.body.Contains(c) {
			s.goal = c
			return
		}
	}
}

func (s *Session) over() {
	s.phase = PhaseOver
	s.sched.Stop()

	if s.score > s.highScore {
		s.highScore = s.score
		s.logger.Info("new high score", "score", s.score)
		if s.store != nil {
			if err := s.store.Set(HighScoreKey, s.score); err != nil {
				s.logger.Warn("failed to save high score", "error", err)
			}
		}
	}

	run := Run{
		ID:      s.runID,
		Score:   s.score,
		Length:  len(s.body),
		Ticks:   s.ticks,
		Mode:    s.mode,
		EndedAt: time.Now(),
	}
	s.lastRun = &run
	if rec, ok := s.store.(RunRecorder); ok {
		if err := rec.RecordRun(run); err != nil {
			s.logger.Warn("failed to record run", "error", err)
		}
	}
	s.logger.Info("game over", "score", s.score, "length", len(s.body), "ticks", s.ticks, "mode", s.mode)
}

func (s *Session) paint() {
	if s.sink == nil {
		return
	}
	cells := make([]Paint, 0, len(s.body)+1)
	if s.goal != NoGoal {
		cells = append(cells, Paint{Cell: s.goal, Tag: TagGoal})
	}
	for i, c := range s.body {
		tag := TagBody
		if i == 0 {
			tag = TagHead
		}
		cells = append(cells, Paint{Cell: c, Tag: tag})
	}
	s.sink.Paint(cells)
}

// Grid returns the board dimensions.
func (s *Session) Grid() core.Grid { return s.cfg.Grid }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Mode returns who is steering.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the score of the current game.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen, including the current game once it
// has ended.
func (s *Session) HighScore() int { return s.highScore }

// Body returns a copy of the snake.
func (s *Session) Body() Body { return s.body.Clone() }

// Goal returns the goal cell, or NoGoal.
func (s *Session) Goal() core.Cell { return s.goal }

// Decision returns the autopilot's most recent decision.
func (s *Session) Decision() autopilot.Decision { return s.ctrl.Last() }

// LastRun returns the most recently finished game, if any.
func (s *Session) LastRun() (Run, bool) {
	if s.lastRun == nil {
		return Run{}, false
	}
	return *s.lastRun, true
}
