package sim_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/orbit-lab/newtonian/internal/body"
	"github.com/orbit-lab/newtonian/internal/metrics"
	"github.com/orbit-lab/newtonian/internal/sim"
)

// memRecorder keeps deep copies of every snapshot, honoring the contract
// that a recorder must not alias the driver's live collection. failAfter
// injects an error on the (failAfter+1)th Add when err is set.
type memRecorder struct {
	times     []uint64
	snaps     [][]body.Body
	failAfter int
	err       error
}

func (m *memRecorder) Add(t uint64, bodies []body.Body) error {
	if m.err != nil && len(m.times) == m.failAfter {
		return m.err
	}
	m.times = append(m.times, t)
	m.snaps = append(m.snaps, body.Clone(bodies))
	return nil
}

type countingObserver struct {
	records int
	steps   int
}

func (c *countingObserver) OnRecord(uint64, []body.Body) { c.records++ }
func (c *countingObserver) OnStep(uint64, []body.Body)   { c.steps++ }

func twoBodies() []body.Body {
	return []body.Body{
		{Name: "a", Mass: 1, Position: body.Vector3{X: -1}},
		{Name: "b", Mass: 1, Position: body.Vector3{X: 1}},
	}
}

var _ = Describe("Config", func() {
	valid := sim.Config{TotalTime: 1, Dt: 0.1, RecordInterval: 1, G: 1}

	It("accepts a valid configuration", func() {
		Expect(valid.Validate()).To(Succeed())
	})

	It("rejects non-positive dt", func() {
		cfg := valid
		cfg.Dt = 0
		Expect(cfg.Validate()).To(MatchError(sim.ErrNonPositiveDt))
		cfg.Dt = -0.5
		Expect(cfg.Validate()).To(MatchError(sim.ErrNonPositiveDt))
	})

	It("rejects non-positive record interval", func() {
		cfg := valid
		cfg.RecordInterval = 0
		Expect(cfg.Validate()).To(MatchError(sim.ErrNonPositiveRecordInterval))
	})

	It("rejects record interval below dt", func() {
		cfg := valid
		cfg.RecordInterval = cfg.Dt / 2
		Expect(cfg.Validate()).To(MatchError(sim.ErrRecordIntervalBelowDt))
	})

	It("rejects non-positive gravity", func() {
		cfg := valid
		cfg.G = 0
		Expect(cfg.Validate()).To(MatchError(sim.ErrNonPositiveGravity))
	})

	It("derives step counts by ceiling division", func() {
		Expect(sim.Config{TotalTime: 1, Dt: 0.1, RecordInterval: 1, G: 1}.Steps()).To(Equal(10))
		Expect(sim.Config{TotalTime: 1, Dt: 0.1, RecordInterval: 1, G: 1}.RecordSteps()).To(Equal(10))
		Expect(sim.Config{TotalTime: 1, Dt: 0.001, RecordInterval: 1, G: 1}.Steps()).To(Equal(1000))
		Expect(sim.Config{TotalTime: 0.95, Dt: 0.1, RecordInterval: 1, G: 1}.Steps()).To(Equal(10))
	})

	It("clamps non-positive durations to zero steps", func() {
		Expect(sim.Config{TotalTime: 0, Dt: 0.1, RecordInterval: 1, G: 1}.Steps()).To(BeZero())
		Expect(sim.Config{TotalTime: -5, Dt: 0.1, RecordInterval: 1, G: 1}.Steps()).To(BeZero())
	})
})

var _ = Describe("Runner", func() {
	It("is a silent no-op for non-positive total time", func() {
		for _, total := range []float64{0, -1} {
			rec := &memRecorder{}
			bodies := twoBodies()
			before := body.Clone(bodies)

			err := sim.New(rec).Run(bodies, sim.Config{
				TotalTime: total, Dt: 0.1, RecordInterval: 1, G: 1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(rec.times).To(BeEmpty())
			Expect(bodies).To(Equal(before))
		}
	})

	It("records exactly one snapshot when the next boundary falls outside the run", func() {
		rec := &memRecorder{}
		err := sim.New(rec).Run(twoBodies(), sim.Config{
			TotalTime: 1.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.times).To(Equal([]uint64{0}))
	})

	It("records exactly one snapshot with a finer step", func() {
		rec := &memRecorder{}
		err := sim.New(rec).Run(twoBodies(), sim.Config{
			TotalTime: 1.0, Dt: 0.001, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.times).To(Equal([]uint64{0}))
	})

	It("emits snapshots at every multiple of the record step count", func() {
		rec := &memRecorder{}
		err := sim.New(rec).Run(twoBodies(), sim.Config{
			TotalTime: 3.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.times).To(Equal([]uint64{0, 10, 20}))
	})

	It("captures state as of the boundary, before integrating that step", func() {
		rec := &memRecorder{}
		bodies := twoBodies()
		initial := body.Clone(bodies)

		err := sim.New(rec).Run(bodies, sim.Config{
			TotalTime: 2.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(rec.snaps).To(HaveLen(2))
		// The step-0 snapshot is the untouched initial state even though the
		// driver kept mutating the collection afterwards.
		Expect(rec.snaps[0]).To(Equal(initial))
		Expect(rec.snaps[1]).NotTo(Equal(initial))
	})

	It("preserves body order in every snapshot", func() {
		rec := &memRecorder{}
		err := sim.New(rec).Run(twoBodies(), sim.Config{
			TotalTime: 3.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		for _, snap := range rec.snaps {
			Expect(snap[0].Name).To(Equal("a"))
			Expect(snap[1].Name).To(Equal("b"))
		}
	})

	It("never mutates mass", func() {
		rec := &memRecorder{}
		bodies := twoBodies()
		want := metrics.TotalMass(bodies)

		err := sim.New(rec).Run(bodies, sim.Config{
			TotalTime: 5.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(metrics.TotalMass(bodies)).To(Equal(want))
		for _, snap := range rec.snaps {
			Expect(metrics.TotalMass(snap)).To(Equal(want))
		}
	})

	It("aborts on the first recorder failure and propagates it", func() {
		boom := errors.New("disk full")
		rec := &memRecorder{failAfter: 1, err: boom}

		err := sim.New(rec).Run(twoBodies(), sim.Config{
			TotalTime: 5.0, Dt: 0.1, RecordInterval: 1, G: 1,
		})

		Expect(err).To(MatchError(boom))
		var recErr *sim.RecordError
		Expect(errors.As(err, &recErr)).To(BeTrue())
		Expect(recErr.Step).To(Equal(uint64(10)))
		// Only the snapshot before the failure was emitted.
		Expect(rec.times).To(Equal([]uint64{0}))
	})

	It("notifies observers without affecting recording", func() {
		withObs := &memRecorder{}
		obs := &countingObserver{}
		runner := sim.New(withObs)
		runner.AddObserver(obs)
		cfg := sim.Config{TotalTime: 3.0, Dt: 0.1, RecordInterval: 1, G: 1}

		Expect(runner.Run(twoBodies(), cfg)).To(Succeed())
		Expect(obs.records).To(Equal(3))
		Expect(obs.steps).To(Equal(30))

		plain := &memRecorder{}
		Expect(sim.New(plain).Run(twoBodies(), cfg)).To(Succeed())
		Expect(withObs.times).To(Equal(plain.times))
		Expect(withObs.snaps).To(Equal(plain.snaps))
	})
})
