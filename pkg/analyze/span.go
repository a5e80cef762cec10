package analyze

import (
	"math"
	"time"
)

// SpanAccumulator tracks the earliest and latest timestamps seen,
// regardless of the order records arrive in.
type SpanAccumulator struct {
	earliest time.Time
	latest   time.Time
	set      bool
}

func (s *SpanAccumulator) Observe(t time.Time) {
	if !s.set {
		s.earliest, s.latest, s.set = t, t, true
		return
	}
	if t.Before(s.earliest) {
		s.earliest = t
	}
	if t.After(s.latest) {
		s.latest = t
	}
}

func (s *SpanAccumulator) Earliest() (time.Time, bool) {
	return s.earliest, s.set
}

func (s *SpanAccumulator) Latest() (time.Time, bool) {
	return s.latest, s.set
}

// ElapsedSeconds returns latest - earliest in seconds, or false when no
// timestamp has been observed.
func (s *SpanAccumulator) ElapsedSeconds() (float64, bool) {
	if !s.set {
		return 0, false
	}
	return s.latest.Sub(s.earliest).Seconds(), true
}

// EventsPerSecond divides records by the elapsed span, rounded to two
// decimals. Rates below 0.005 keep two significant digits instead of
// becoming 0. A zero span counts as one instant, giving records itself.
func EventsPerSecond(records uint64, span *SpanAccumulator) (float64, bool) {
	if records == 0 {
		return 0, false
	}
	elapsed, ok := span.ElapsedSeconds()
	if !ok {
		return 0, false
	}
	if elapsed == 0 {
		return float64(records), true
	}
	return roundRate(float64(records) / elapsed), true
}

func roundRate(rate float64) float64 {
	if r := math.Round(rate*100) / 100; r != 0 {
		return r
	}
	scale := math.Pow(10, 1-math.Floor(math.Log10(rate)))
	return math.Round(rate*scale) / scale
}
