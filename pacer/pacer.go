// Package pacer keeps the emulated processor at its historical clock rate.
//
// The processor runs at host speed for a budget of cycles, then sleeps
// for whatever is left of the time those cycles should have taken on the
// real machine. Measuring against the wall clock since the previous pause
// absorbs scheduling jitter, so the long run average stays on the target
// rate even though a single pause is coarse.
package pacer

import (
	"io"
	"log"
	"sync/atomic"
	"time"
)

const (
	// DefaultRate of the 8080 in the Altair, in Hz
	DefaultRate = 2000000

	// DefaultBudget : cycles executed between two pauses
	DefaultBudget = 250000

	// every overrunLogEvery-th pause without sleep is logged
	overrunLogEvery = 64
)

// Counter is the processor's cycle counter.
type Counter interface {
	Cycles() uint64
	ResetCycles()
}

// Pacer throttles the execution loop
type Pacer struct {
	rate   uint64
	budget uint64
	ideal  time.Duration

	clock Clock
	log   *log.Logger
	last  time.Time

	pauses   atomic.Int64
	overruns atomic.Int64
	slept    atomic.Int64
	cycles   atomic.Uint64
}

// Stats - what the pacer did so far
type Stats struct {
	Pauses   int64         // budgets completed
	Overruns int64         // budgets which took longer than real time
	Slept    time.Duration // total time spent sleeping
	Cycles   uint64        // cycles accounted at pauses
}

// New returns a pacer for the given clock rate (Hz) and cycle budget.
// Zero values select the defaults.
func New(rate, budget uint64, clock Clock, logger *log.Logger) *Pacer {
	if rate == 0 {
		rate = DefaultRate
	}
	if budget == 0 {
		budget = DefaultBudget
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pacer{
		rate:   rate,
		budget: budget,
		ideal:  time.Duration(budget) * time.Second / time.Duration(rate),
		clock:  clock,
		log:    logger,
	}
}

// Ideal returns how long one budget takes on the real machine.
func (p *Pacer) Ideal() time.Duration {
	return p.ideal
}

// Rate returns the target clock rate in Hz
func (p *Pacer) Rate() uint64 {
	return p.rate
}

// Budget returns the cycle budget
func (p *Pacer) Budget() uint64 {
	return p.budget
}

// Start marks the beginning of the first budget.
func (p *Pacer) Start() {
	p.last = p.clock.Now()
}

// MaybePace is called after every instruction. Once the counter exceeds
// the budget it sleeps the rest of the budget's real time, if any is
// left, then restarts the budget and zeroes the counter.
func (p *Pacer) MaybePace(c Counter) error {
	cycles := c.Cycles()
	if cycles <= p.budget {
		return nil
	}

	taken := p.clock.Now().Sub(p.last)
	sleep := p.ideal - taken
	if sleep > 0 {
		if err := p.clock.Sleep(sleep); err != nil {
			return err
		}
		p.slept.Add(int64(sleep))
	} else {
		n := p.overruns.Add(1)
		if n == 1 || n%overrunLogEvery == 0 {
			p.log.Printf("pacer: budget took %v, real machine %v (%d overruns)", taken, p.ideal, n)
		}
	}

	p.last = p.clock.Now()
	c.ResetCycles()
	p.pauses.Add(1)
	p.cycles.Add(cycles)
	return nil
}

// Stats may be called from any goroutine.
func (p *Pacer) Stats() Stats {
	return Stats{
		Pauses:   p.pauses.Load(),
		Overruns: p.overruns.Load(),
		Slept:    time.Duration(p.slept.Load()),
		Cycles:   p.cycles.Load(),
	}
}

// RateSince returns the clock rate achieved between prev and s, d apart.
func (s Stats) RateSince(prev Stats, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(s.Cycles-prev.Cycles) / d.Seconds()
}
