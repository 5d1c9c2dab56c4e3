package anim

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Counter climbs from zero to a target in fixed increments. Displayed
// values are floored, never exceed the target and end exactly on it.
type Counter struct {
	mu        sync.Mutex
	target    decimal.Decimal
	increment decimal.Decimal
	current   decimal.Decimal
	done      bool
}

// NewCounter splits target into steps increments. Steps below one count
// as one.
func NewCounter(target decimal.Decimal, steps int) *Counter {
	if steps < 1 {
		steps = 1
	}
	return &Counter{
		target:    target,
		increment: target.Div(decimal.NewFromInt(int64(steps))),
		current:   decimal.Zero,
	}
}

// Step advances one tick and returns the value to display. done is true
// once the target has been reached; further calls keep returning it.
func (c *Counter) Step() (value decimal.Decimal, done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.target, true
	}
	c.current = c.current.Add(c.increment)
	if c.current.GreaterThanOrEqual(c.target) {
		c.done = true
		return c.target, true
	}
	return c.current.Floor(), false
}

func (c *Counter) Target() decimal.Decimal {
	return c.target
}

func (c *Counter) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Animate steps c on s every tick, handing each value to onValue, and stops
// after the target has been delivered.
func Animate(s *Scheduler, c *Counter, tick time.Duration, onValue func(decimal.Decimal)) *Timer {
	return s.Until("counter", tick, func() bool {
		v, done := c.Step()
		onValue(v)
		return done
	})
}
