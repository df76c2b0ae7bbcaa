package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// HighScoreKey is the store key the best score is kept under.
const HighScoreKey = "highScore"

// Store is persistent integer key-value storage.
// Get reports ok=false when the key has never been set.
type Store interface {
	Get(key string) (value int, ok bool, err error)
	Set(key string, value int) error
}

// Run is one finished game.
type Run struct {
	ID      uuid.UUID
	Score   int
	Length  int
	Ticks   uint64
	Mode    Mode
	EndedAt time.Time
}

// RunRecorder is implemented by stores that also keep a history of runs.
// The session records every finished game when its store implements it.
type RunRecorder interface {
	RecordRun(run Run) error
}

// Tag says how a painted cell should look.
type Tag int

const (
	TagGoal Tag = iota
	TagHead
	TagBody
)

// Paint is one colored grid cell handed to the sink.
type Paint struct {
	Cell core.Cell
	Tag  Tag
}

// Sink receives the board once per executed tick and once after every reset.
type Sink interface {
	Paint(cells []Paint)
}

// Scheduler drives Tick at a fixed interval.
// Start replaces any running timer; partial elapsed time is discarded.
type Scheduler interface {
	Start(interval time.Duration)
	Stop()
}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration) {}
func (nopScheduler) Stop()               {}

// MemoryStore is an in-process Store. It also records runs.
type MemoryStore struct {
	values map[string]int
	runs   []Run
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(key string) (int, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key string, value int) error {
	m.values[key] = value
	return nil
}

// RecordRun appends run to the history.
func (m *MemoryStore) RecordRun(run Run) error {
	m.runs = append(m.runs, run)
	return nil
}

// Runs returns the recorded runs, oldest first.
func (m *MemoryStore) Runs() []Run {
	return m.runs
}
