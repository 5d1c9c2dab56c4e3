package anim

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakura/internal/log"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestPetalConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PetalConfig)
		wantErr bool
	}{
		{"defaults", func(c *PetalConfig) {}, false},
		{"seed at cap+batch", func(c *PetalConfig) { c.Seed = c.Cap + c.Batch }, false},
		{"seed above cap+batch", func(c *PetalConfig) { c.Seed = 60 }, true},
		{"negative seed", func(c *PetalConfig) { c.Seed = -1 }, true},
		{"zero cap", func(c *PetalConfig) { c.Cap = 0 }, true},
		{"zero batch", func(c *PetalConfig) { c.Batch = 0 }, true},
		{"zero interval", func(c *PetalConfig) { c.Interval = 0 }, true},
		{"zero width", func(c *PetalConfig) { c.Width = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultPetalConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := NewPetalField(PetalConfig{}, nil, nil)
	assert.Error(t, err)
}

func TestPetalSeedRanges(t *testing.T) {
	cfg := DefaultPetalConfig()
	f, err := NewPetalField(cfg, testRand(1), log.Discard())
	require.NoError(t, err)
	f.Seed()

	petals := f.Petals()
	require.Len(t, petals, cfg.Seed)
	for _, p := range petals {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, cfg.Width)
		assert.GreaterOrEqual(t, p.Duration, 8*time.Second)
		assert.Less(t, p.Duration, 20*time.Second)
		assert.Less(t, p.Delay, 10*time.Second)
		assert.GreaterOrEqual(t, p.Size, 6.0)
		assert.Less(t, p.Size, 16.0)
		assert.Less(t, p.Rotation, 360.0)
		assert.GreaterOrEqual(t, p.Sway, 20.0)
		assert.Less(t, p.Sway, 60.0)
	}

	f.Tick()
	for _, p := range f.Petals()[cfg.Cap:] {
		assert.Less(t, p.Delay, 2*time.Second, "new batches start sooner")
	}
}

func TestPetalPopulationBound(t *testing.T) {
	cfg := PetalConfig{Cap: 10, Seed: 0, Batch: 3, Interval: time.Second, Width: 100}
	f, err := NewPetalField(cfg, testRand(2), nil)
	require.NoError(t, err)
	f.Seed()
	assert.Zero(t, f.Len())

	want := []int{3, 6, 9, 12, 13, 13}
	for i, n := range want {
		f.Tick()
		assert.Equal(t, n, f.Len(), "after tick %d", i+1)
	}

	for range 200 {
		f.Tick()
		require.LessOrEqual(t, f.Len(), cfg.Cap+cfg.Batch)
	}
	assert.Equal(t, cfg.Cap+cfg.Batch, f.Len())
}

func TestPetalFIFOEviction(t *testing.T) {
	cfg := PetalConfig{Cap: 4, Seed: 6, Batch: 2, Interval: time.Second, Width: 100}
	f, err := NewPetalField(cfg, testRand(3), nil)
	require.NoError(t, err)
	f.Seed()
	before := f.Petals()

	f.Tick()
	after := f.Petals()
	require.Len(t, after, 6)

	// The two oldest are gone, the rest keep their order, the batch is last.
	assert.Equal(t, before[2:], after[:4])
	for i := 1; i < len(after); i++ {
		assert.Greater(t, after[i].ID, after[i-1].ID)
	}
}

func TestPetalDeterministicWithSource(t *testing.T) {
	cfg := DefaultPetalConfig()
	a, err := NewPetalField(cfg, testRand(42), nil)
	require.NoError(t, err)
	b, err := NewPetalField(cfg, testRand(42), nil)
	require.NoError(t, err)

	a.Seed()
	b.Seed()
	a.Tick()
	b.Tick()
	assert.Equal(t, a.Petals(), b.Petals())
}

func TestPetalSnapshotIsolation(t *testing.T) {
	f, err := NewPetalField(DefaultPetalConfig(), testRand(4), nil)
	require.NoError(t, err)
	f.Seed()
	snap := f.Petals()
	first := snap[0]

	for range 20 {
		f.Tick()
	}
	assert.Equal(t, first, snap[0])
}

func TestPetalStart(t *testing.T) {
	cfg := PetalConfig{Cap: 10, Seed: 2, Batch: 1, Interval: time.Millisecond, Width: 100}
	f, err := NewPetalField(cfg, testRand(5), nil)
	require.NoError(t, err)
	f.Seed()

	s := newTestScheduler(t)
	f.Start(s)
	assert.Eventually(t, func() bool { return f.Len() == cfg.Cap+cfg.Batch }, waitFor, poll)

	require.NoError(t, s.Close())
	n := f.Len()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, f.Len())
}

func rand1() *rand.PCG {
	return rand.NewPCG(1, 2)
}
