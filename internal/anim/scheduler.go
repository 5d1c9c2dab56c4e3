// Package anim drives the decorative parts of the interface: falling petals,
// the mascot and animated counters.
//
// Everything time based runs on a Scheduler owned by one mounted view.
// Callbacks are serialized, so tick handlers never overlap, and closing the
// scheduler is the single point that releases every timer it started.
package anim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sakura/internal/log"
)

// Scheduler runs named timers on their own goroutines and executes their
// callbacks one at a time.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	logger *log.Logger

	// turn serializes callbacks.
	turn sync.Mutex

	mu      sync.Mutex
	closed  bool
	running atomic.Int64
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	name     string
	interval time.Duration
	repeat   bool
	fn       func() bool

	stop     chan struct{}
	stopOnce sync.Once
	reset    chan struct{}
	done     chan struct{}
}

// NewScheduler returns a scheduler whose timers stop when ctx is done or
// Close is called. Timers started after that are inert.
func NewScheduler(ctx context.Context, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Discard()
	}
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	return &Scheduler{
		ctx:    gctx,
		cancel: cancel,
		group:  g,
		logger: logger.WithComponent(log.ComponentAnim),
	}
}

// Every calls fn every interval until the timer is stopped.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Timer {
	return s.start(name, interval, true, func() bool { fn(); return false })
}

// Until calls fn every interval until fn reports true or the timer is
// stopped.
func (s *Scheduler) Until(name string, interval time.Duration, fn func() (done bool)) *Timer {
	return s.start(name, interval, true, fn)
}

// After calls fn once after delay.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) *Timer {
	return s.start(name, delay, false, func() bool { fn(); return true })
}

func (s *Scheduler) start(name string, interval time.Duration, repeat bool, fn func() bool) *Timer {
	t := &Timer{
		name:     name,
		interval: interval,
		repeat:   repeat,
		fn:       fn,
		stop:     make(chan struct{}),
		reset:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ctx.Err() != nil || interval <= 0 {
		if interval <= 0 {
			s.logger.Warn("Timer not started",
				log.FieldTimer, name,
				log.FieldInterval, interval.String(),
				log.FieldErrorType, log.ErrorTypeConfiguration)
		}
		// Inert handle: nothing runs.
		close(t.done)
		return t
	}
	s.running.Add(1)
	s.group.Go(func() error {
		defer close(t.done)
		defer s.running.Add(-1)
		s.run(t)
		return nil
	})
	s.logger.Debug("Timer started", log.NewFields().
		WithTimer(name, interval.String()).
		ToSlice()...)
	return t
}

func (s *Scheduler) run(t *Timer) {
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-t.stop:
			return
		case <-t.reset:
			timer.Reset(t.interval)
		case <-timer.C:
			if s.fire(t) || !t.repeat {
				return
			}
			timer.Reset(t.interval)
		}
	}
}

// fire runs one callback turn and reports whether the timer is finished.
func (s *Scheduler) fire(t *Timer) (finished bool) {
	s.turn.Lock()
	defer s.turn.Unlock()

	// Stopped while waiting for the turn.
	select {
	case <-t.stop:
		return true
	case <-s.ctx.Done():
		return true
	default:
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Timer callback panicked",
				log.FieldTimer, t.name,
				log.FieldErrorType, log.ErrorTypeInternal,
				log.FieldError, fmt.Sprint(r))
			finished = true
		}
	}()
	return t.fn()
}

// Running reports how many timer goroutines are alive.
func (s *Scheduler) Running() int {
	return int(s.running.Load())
}

// Close stops every timer and waits for their goroutines to exit. It must
// not be called from a timer callback. Close is idempotent.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	return s.group.Wait()
}

// Stop cancels the timer. A callback already running completes.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Reset restarts the countdown of a pending timer. It has no effect once
// the timer has finished or was stopped.
func (t *Timer) Reset() {
	if !t.live() {
		return
	}
	select {
	case t.reset <- struct{}{}:
	default:
	}
}

// live reports whether the timer goroutine is still running.
func (t *Timer) live() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Done is closed when the timer goroutine has exited.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

func (t *Timer) Name() string {
	return t.name
}
