// Package sim owns the step/record loop: it converts a wall-clock style
// configuration into a fixed number of discrete steps, drives the integrator
// once per step, and hands timestamped snapshots to a recorder at recording
// boundaries.
package sim

import (
	"math"

	"github.com/orbit-lab/newtonian/internal/body"
	"github.com/orbit-lab/newtonian/internal/dynamics"
)

// Recorder consumes one (step index, body snapshot) pair per recording
// boundary. Implementations must copy whatever they keep: the driver goes on
// mutating the passed slice after Add returns.
type Recorder interface {
	Add(time uint64, bodies []body.Body) error
}

// Observer receives cosmetic notifications from the loop. Observers cannot
// fail and must not affect step count, boundaries, or numerical results.
type Observer interface {
	// OnRecord fires at each recording boundary, before integration.
	OnRecord(step uint64, bodies []body.Body)
	// OnStep fires after each completed integration step.
	OnStep(step uint64, bodies []body.Body)
}

// Config is the run-level configuration surface.
type Config struct {
	TotalTime      float64 // seconds to simulate; <= 0 means a no-op run
	Dt             float64 // step size in seconds, > 0
	RecordInterval float64 // seconds between snapshots, >= Dt
	G              float64 // gravitational constant, > 0
}

// DefaultConfig simulates one year at millisecond resolution, recording
// every second, under physical gravity.
func DefaultConfig() Config {
	return Config{
		TotalTime:      60 * 60 * 24 * 365,
		Dt:             0.001,
		RecordInterval: 1,
		G:              dynamics.G,
	}
}

func (c Config) Validate() error {
	if c.Dt <= 0 {
		return ErrNonPositiveDt
	}
	if c.RecordInterval <= 0 {
		return ErrNonPositiveRecordInterval
	}
	if c.RecordInterval < c.Dt {
		return ErrRecordIntervalBelowDt
	}
	if c.G <= 0 {
		return ErrNonPositiveGravity
	}
	return nil
}

// Steps is the total number of integration steps the run performs.
// Non-positive durations clamp to zero.
func (c Config) Steps() int {
	steps := int(math.Ceil(c.TotalTime / c.Dt))
	if steps < 0 {
		return 0
	}
	return steps
}

// RecordSteps is the number of integration steps per recording interval.
// Validate guarantees it is at least 1.
func (c Config) RecordSteps() int {
	return int(math.Ceil(c.RecordInterval / c.Dt))
}

// Runner drives a single synchronous simulation pass. It exclusively owns
// the body collection for the run's duration and mutates it in place.
type Runner struct {
	rec       Recorder
	observers []Observer
}

func New(rec Recorder) *Runner {
	return &Runner{rec: rec}
}

func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Run integrates bodies for cfg.Steps() steps, emitting a snapshot before
// integrating every step whose index is a multiple of cfg.RecordSteps().
// The timestamp handed to the recorder is the step index. The first recorder
// failure aborts the run; the caller remains responsible for finalizing the
// recorder either way.
func (r *Runner) Run(bodies []body.Body, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	steps := cfg.Steps()
	recordSteps := cfg.RecordSteps()

	for step := 0; step < steps; step++ {
		if step%recordSteps == 0 {
			if err := r.rec.Add(uint64(step), bodies); err != nil {
				return &RecordError{Step: uint64(step), Err: err}
			}
			for _, o := range r.observers {
				o.OnRecord(uint64(step), bodies)
			}
		}

		dynamics.Step(bodies, cfg.Dt, cfg.G)

		for _, o := range r.observers {
			o.OnStep(uint64(step), bodies)
		}
	}

	return nil
}
