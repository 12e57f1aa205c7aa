package core

import (
	"math"
	"time"
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepClock(tps, time.Now)
}

// NewFixedStepClock is NewFixedStep reading time from now.
func NewFixedStepClock(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{maxCatchUp: 5, now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due returns how many ticks elapsed since the last call. After a long stall
// at most maxCatchUp ticks are reported and the backlog is dropped.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > f.maxCatchUp {
		f.accumulator = 0
		return f.maxCatchUp
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// FrameStatsWindow is the number of frames FrameStats averages over.
const FrameStatsWindow = 100

// FrameStats keeps a moving window of frames-per-second samples.
type FrameStats struct {
	samples []float64
	next    int
	last    time.Time
	latest  float64

	now func() time.Time
}

// NewFrameStats returns an empty FrameStats.
func NewFrameStats() *FrameStats {
	return &FrameStats{samples: make([]float64, 0, FrameStatsWindow), now: time.Now}
}

// Tick records a frame boundary. The first call only starts the clock.
func (s *FrameStats) Tick() {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return
	}
	delta := now.Sub(s.last)
	s.last = now
	if delta <= 0 {
		return
	}
	s.Add(float64(time.Second) / float64(delta))
}

// Add records an FPS sample directly.
func (s *FrameStats) Add(fps float64) {
	s.latest = fps
	if len(s.samples) < FrameStatsWindow {
		s.samples = append(s.samples, fps)
		return
	}
	s.samples[s.next] = fps
	s.next = (s.next + 1) % FrameStatsWindow
}

// FrameSummary reports the latest sample and the aggregate over the window.
type FrameSummary struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
	Count  int
}

// Summary aggregates the current window. All fields are zero when empty.
func (s *FrameStats) Summary() FrameSummary {
	if len(s.samples) == 0 {
		return FrameSummary{}
	}
	sum := FrameSummary{Latest: s.latest, Min: math.Inf(1), Max: math.Inf(-1), Count: len(s.samples)}
	total := 0.0
	for _, v := range s.samples {
		total += v
		sum.Min = math.Min(sum.Min, v)
		sum.Max = math.Max(sum.Max, v)
	}
	sum.Mean = total / float64(len(s.samples))
	return sum
}
