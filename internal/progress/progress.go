// Package progress renders a cosmetic progress bar during a run. It is a
// pure observer hooked on the loop's notifications: it never influences step
// count, recording boundaries, or numerical results, and headless callers
// simply omit it.
package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/orbit-lab/newtonian/internal/body"
)

// Bar spans one recording interval and restarts at every boundary, labelled
// "interval k/n".
type Bar struct {
	bar         *progressbar.ProgressBar
	recordSteps int
	intervals   int
}

// New builds a bar for a run of steps integration steps with recordSteps
// steps per recording interval. Output goes to out, typically os.Stderr.
func New(steps, recordSteps int, out io.Writer) *Bar {
	intervals := (steps + recordSteps - 1) / recordSteps
	bar := progressbar.NewOptions(recordSteps,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(fmt.Sprintf("interval 0/%d", intervals)),
	)
	return &Bar{bar: bar, recordSteps: recordSteps, intervals: intervals}
}

func (b *Bar) OnRecord(step uint64, _ []body.Body) {
	current := int(step)/b.recordSteps + 1
	b.bar.Describe(fmt.Sprintf("interval %d/%d", current, b.intervals))
	b.bar.Reset()
}

func (b *Bar) OnStep(step uint64, _ []body.Body) {
	_ = b.bar.Set(int(step)%b.recordSteps + 1)
}

// Finish completes the bar after the run.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
	_ = b.bar.Clear()
}
