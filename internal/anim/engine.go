package anim

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"sakura/internal/log"
)

var (
	ErrMounted    = errors.New("engine already mounted")
	ErrNotMounted = errors.New("engine not mounted")
)

// Engine owns the decorations of one view: petals, the mascot and any
// running counters.
type Engine struct {
	cfg    Config
	Petals *PetalField
	Mascot *Mascot

	mu     sync.Mutex
	sched  *Scheduler
	logger *log.Logger
}

// NewEngine builds the decorations. A nil src draws from the global
// random source.
func NewEngine(cfg Config, src rand.Source) (*Engine, error) {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	// Each decoration gets its own generator; rand.Rand is not safe for
	// concurrent use.
	root := rand.New(src)
	fork := func() *rand.Rand { return rand.New(rand.NewPCG(root.Uint64(), root.Uint64())) }

	petals, err := NewPetalField(cfg.Petals, fork(), nil)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		Petals: petals,
		Mascot: NewMascot(cfg.Mascot, fork(), nil),
		logger: log.Discard(),
	}, nil
}

// Mount seeds the petals and starts every decoration timer on a fresh
// scheduler bound to ctx. The logger is taken from ctx. Decorations are
// released when ctx is done or the returned release is called; release is
// safe to call more than once.
func (e *Engine) Mount(ctx context.Context) (release func(), err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sched != nil {
		return nil, ErrMounted
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mount decorations: %w", err)
	}

	logger := log.FromContextOr(ctx, log.Discard())
	e.logger = logger.WithComponent(log.ComponentAnim)
	e.Petals.setLogger(logger.WithComponent(log.ComponentPetals))
	e.Mascot.setLogger(logger.WithComponent(log.ComponentMascot))

	sched := NewScheduler(ctx, logger)
	e.sched = sched

	e.Petals.Seed()
	e.Petals.Start(sched)
	e.Mascot.Mount(sched)

	e.logger.Info("Decorations mounted",
		log.FieldOperation, log.OpMount,
		log.FieldPetals, e.Petals.Len(),
		log.FieldCount, sched.Running())

	animLogger := e.logger
	var once sync.Once
	done := func() {
		once.Do(func() { e.release(sched, animLogger) })
	}
	stop := context.AfterFunc(ctx, done)
	return func() {
		stop()
		done()
	}, nil
}

func (e *Engine) release(sched *Scheduler, logger *log.Logger) {
	if err := sched.Close(); err != nil {
		logger.Error("Scheduler close failed",
			log.FieldOperation, log.OpRelease,
			log.FieldError, err)
	}
	e.Mascot.Unmount()

	e.mu.Lock()
	if e.sched == sched {
		e.sched = nil
	}
	e.mu.Unlock()

	logger.Info("Decorations released",
		log.FieldOperation, log.OpRelease,
		log.FieldCount, sched.Running())
}

// Mounted reports whether decorations are running.
func (e *Engine) Mounted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched != nil
}

// Count animates a counter towards target on the mounted scheduler using
// the configured steps and tick.
func (e *Engine) Count(target decimal.Decimal, onValue func(decimal.Decimal)) (*Timer, error) {
	e.mu.Lock()
	sched, logger := e.sched, e.logger
	e.mu.Unlock()
	if sched == nil {
		return nil, fmt.Errorf("count to %s: %w", target, ErrNotMounted)
	}
	logger.WithComponent(log.ComponentCounter).Debug("Counter started",
		log.FieldAmount, target.String(),
		log.FieldInterval, e.cfg.CounterTick.String())
	return Animate(sched, NewCounter(target, e.cfg.CounterSteps), e.cfg.CounterTick, onValue), nil
}
