package sim

import (
	"errors"
	"fmt"
)

// Configuration errors, rejected before any integration happens.
var (
	// ErrNonPositiveDt indicates a zero or negative timestep.
	ErrNonPositiveDt = errors.New("sim: dt must be positive")

	// ErrNonPositiveRecordInterval indicates a zero or negative recording cadence.
	ErrNonPositiveRecordInterval = errors.New("sim: record interval must be positive")

	// ErrRecordIntervalBelowDt indicates a recording cadence shorter than one step.
	ErrRecordIntervalBelowDt = errors.New("sim: record interval must be at least dt")

	// ErrNonPositiveGravity indicates a zero or negative gravitational constant.
	ErrNonPositiveGravity = errors.New("sim: gravitational constant must be positive")
)

// RecordError wraps the first recorder failure; the run halts immediately
// and nothing after the failing snapshot is integrated or emitted.
type RecordError struct {
	Step uint64
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("sim: recording snapshot at step %d: %v", e.Step, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
