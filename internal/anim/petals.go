package anim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"sakura/internal/log"
)

// Petal is one falling blossom. The renderer animates it; the field only
// decides which petals exist.
type Petal struct {
	ID       int64
	X        float64
	Size     float64
	Rotation float64
	Sway     float64
	Duration time.Duration
	Delay    time.Duration
}

type PetalConfig struct {
	// Cap is how many of the most recent petals survive a tick.
	Cap int
	// Seed is the initial population.
	Seed int
	// Batch is how many petals each tick adds.
	Batch    int
	Interval time.Duration
	// Width is the horizontal spawn range.
	Width float64
}

func DefaultPetalConfig() PetalConfig {
	return PetalConfig{
		Cap:      50,
		Seed:     50,
		Batch:    5,
		Interval: 600 * time.Millisecond,
		Width:    1280,
	}
}

func (c PetalConfig) Validate() error {
	var errs []error
	if c.Cap < 1 {
		errs = append(errs, fmt.Errorf("petal cap %d must be at least 1", c.Cap))
	}
	if c.Batch < 1 {
		errs = append(errs, fmt.Errorf("petal batch %d must be at least 1", c.Batch))
	}
	if c.Seed < 0 || c.Seed > c.Cap+c.Batch {
		errs = append(errs, fmt.Errorf("petal seed %d must be between 0 and cap+batch", c.Seed))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("petal interval %v must be positive", c.Interval))
	}
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("petal width %v must be positive", c.Width))
	}
	return errors.Join(errs...)
}

// Random ranges, [min, min+span).
const (
	durationMin, durationSpan = 8 * time.Second, 12 * time.Second
	seedDelaySpan             = 10 * time.Second
	batchDelaySpan            = 2 * time.Second
	sizeMin, sizeSpan         = 6.0, 10.0
	rotationSpan              = 360.0
	swayMin, swaySpan         = 20.0, 40.0
)

// PetalField is a bounded stream of petals. Its length never exceeds
// Cap+Batch and insertion order is kept.
type PetalField struct {
	cfg PetalConfig

	mu     sync.Mutex
	logger *log.Logger
	rng    *rand.Rand
	petals []Petal
	nextID int64
}

func NewPetalField(cfg PetalConfig, rng *rand.Rand, logger *log.Logger) (*PetalField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("petal field: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &PetalField{cfg: cfg, rng: rng, logger: logger.WithComponent(log.ComponentPetals)}, nil
}

// Seed replaces the field with the initial population.
func (f *PetalField) Seed() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.petals = make([]Petal, 0, f.cfg.Cap+f.cfg.Batch)
	for range f.cfg.Seed {
		f.petals = append(f.petals, f.spawn(seedDelaySpan))
	}
	f.logger.Debug("Petals seeded", log.FieldPetals, len(f.petals))
}

// Tick keeps the most recent Cap petals and appends a new batch.
func (f *PetalField) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	keep := f.petals
	if len(keep) > f.cfg.Cap {
		keep = keep[len(keep)-f.cfg.Cap:]
	}
	next := make([]Petal, 0, len(keep)+f.cfg.Batch)
	next = append(next, keep...)
	for range f.cfg.Batch {
		next = append(next, f.spawn(batchDelaySpan))
	}
	f.petals = next
}

func (f *PetalField) spawn(delaySpan time.Duration) Petal {
	f.nextID++
	return Petal{
		ID:       f.nextID,
		X:        f.rng.Float64() * f.cfg.Width,
		Duration: durationMin + time.Duration(f.rng.Int64N(int64(durationSpan))),
		Delay:    time.Duration(f.rng.Int64N(int64(delaySpan))),
		Size:     sizeMin + f.rng.Float64()*sizeSpan,
		Rotation: f.rng.Float64() * rotationSpan,
		Sway:     swayMin + f.rng.Float64()*swaySpan,
	}
}

func (f *PetalField) setLogger(l *log.Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logger = l
}

// Petals returns a snapshot, oldest first.
func (f *PetalField) Petals() []Petal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.petals)
}

func (f *PetalField) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.petals)
}

// Start ticks the field on s every configured interval.
func (f *PetalField) Start(s *Scheduler) *Timer {
	return s.Every(log.ComponentPetals, f.cfg.Interval, f.Tick)
}
