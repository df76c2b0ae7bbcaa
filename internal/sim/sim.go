// Package sim runs autopilot games without a terminal. It drives a
// game.Session tick by tick, optionally checking the body invariant after
// every move, and summarizes the results.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/autopilot"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configures a batch of simulated games.
type Options struct {
	Games    int
	MaxTicks uint64 // per game; 0 means no limit
	Seed     int64  // game i uses Seed+i
	Check    bool   // validate the body after every tick
	Store    game.Store
	Logger   *log.Logger
}

// Result describes one simulated game.
type Result struct {
	Seed      int64
	Score     int
	Length    int
	Ticks     uint64
	Finished  bool // false when MaxTicks was reached first
	LastMove  autopilot.Reason
	HighScore int
}

// Report aggregates a batch of games.
type Report struct {
	Results   []Result
	BestScore int
	AvgScore  float64
	Survived  int // games cut off by MaxTicks
}

// Run plays opts.Games autonomous games with cfg and reports on them.
// It stops at the first invariant violation when opts.Check is set.
func Run(cfg game.Config, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Mode = game.ModeAutonomous

	var rep Report
	total := 0
	for i := range opts.Games {
		seed := opts.Seed + int64(i)
		session := game.NewSession(cfg, game.Options{
			Seed:   seed,
			Store:  opts.Store,
			Logger: logger,
		})

		res, err := play(session, opts)
		res.Seed = seed
		if err != nil {
			return rep, fmt.Errorf("sim: game %d (seed %d): %w", i+1, seed, err)
		}

		logger.Debug("game finished", "game", i+1, "seed", seed, "score", res.Score, "ticks", res.Ticks)
		rep.Results = append(rep.Results, res)
		rep.BestScore = max(rep.BestScore, res.Score)
		total += res.Score
		if !res.Finished {
			rep.Survived++
		}
	}
	if len(rep.Results) > 0 {
		rep.AvgScore = float64(total) / float64(len(rep.Results))
	}
	return rep, nil
}

func play(s *game.Session, opts Options) (Result, error) {
	for s.Phase() == game.PhaseRunning {
		snap := s.Snapshot()
		if opts.MaxTicks > 0 && snap.Ticks >= opts.MaxTicks {
			break
		}
		s.Tick()
		if opts.Check {
			if err := check(s); err != nil {
				return result(s), fmt.Errorf("tick %d: %w", s.Snapshot().Ticks, err)
			}
		}
	}
	return result(s), nil
}

func check(s *game.Session) error {
	body := s.Body()
	if err := body.Validate(s.Grid()); err != nil {
		return err
	}
	if goal := s.Goal(); goal != game.NoGoal && body.Contains(goal) {
		return fmt.Errorf("goal %v lies on the body", goal)
	}
	return nil
}

func result(s *game.Session) Result {
	snap := s.Snapshot()
	return Result{
		Score:     snap.Score,
		Length:    snap.Length,
		Ticks:     snap.Ticks,
		Finished:  snap.Phase == game.PhaseOver,
		LastMove:  snap.Reason,
		HighScore: snap.HighScore,
	}
}
