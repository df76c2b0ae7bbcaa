package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func smallConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Grid = core.NewGrid(8, 8)
	cfg.Start = core.Cell{X: 4, Y: 4}
	return cfg
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Games: 5, MaxTicks: 5000, Seed: 100, Check: true}

	a, err := Run(smallConfig(), opts)
	require.NoError(t, err)
	b, err := Run(smallConfig(), opts)
	require.NoError(t, err)

	require.Len(t, a.Results, 5)
	for i := range a.Results {
		assert.Equal(t, a.Results[i], b.Results[i], "game %d", i)
	}
	assert.Equal(t, a.BestScore, b.BestScore)
}

func TestRunSeedsAndAggregates(t *testing.T) {
	rep, err := Run(smallConfig(), Options{Games: 3, MaxTicks: 2000, Seed: 7, Check: true})
	require.NoError(t, err)

	total := 0
	for i, r := range rep.Results {
		assert.Equal(t, int64(7+i), r.Seed)
		assert.Equal(t, 0, r.Score%10)
		assert.Equal(t, r.Score/10+1, r.Length)
		assert.LessOrEqual(t, r.Ticks, uint64(2000))
		total += r.Score
		assert.GreaterOrEqual(t, rep.BestScore, r.Score)
	}
	assert.InDelta(t, float64(total)/3, rep.AvgScore, 1e-9)
}

func TestRunMaxTicksCutsOff(t *testing.T) {
	rep, err := Run(game.DefaultConfig(), Options{Games: 1, MaxTicks: 10, Seed: 1})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	r := rep.Results[0]
	assert.False(t, r.Finished)
	assert.Equal(t, uint64(10), r.Ticks)
	assert.Equal(t, 1, rep.Survived)
}

func TestRunPersistsHighScore(t *testing.T) {
	store := game.NewMemoryStore()
	rep, err := Run(smallConfig(), Options{Games: 4, MaxTicks: 20000, Seed: 3, Store: store})
	require.NoError(t, err)

	finished, best := 0, 0
	for _, r := range rep.Results {
		if r.Finished {
			finished++
			best = max(best, r.Score)
		}
	}
	assert.Len(t, store.Runs(), finished)

	if best > 0 {
		v, ok, err := store.Get(game.HighScoreKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, best, v)
	}
}
