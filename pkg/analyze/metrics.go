package analyze

import (
	"fmt"

	"github.com/spf13/pflag"
)

type Metric string

const (
	MetricMostFrequentIP  Metric = "mfip"
	MetricLeastFrequentIP Metric = "lfip"
	MetricEventsPerSecond Metric = "eps"
	MetricBytes           Metric = "bytes"
)

// AllMetrics lists every metric in report order.
var AllMetrics = []Metric{
	MetricMostFrequentIP,
	MetricLeastFrequentIP,
	MetricEventsPerSecond,
	MetricBytes,
}

// MetricSet is the set of metrics requested for one run.
type MetricSet struct {
	MostFrequentIP  bool
	LeastFrequentIP bool
	EventsPerSecond bool
	Bytes           bool
}

func NewMetricSet(metrics ...Metric) (MetricSet, error) {
	var s MetricSet
	for _, m := range metrics {
		if err := s.Add(m); err != nil {
			return MetricSet{}, err
		}
	}
	return s, nil
}

func (s *MetricSet) InstallFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&s.MostFrequentIP, string(MetricMostFrequentIP), s.MostFrequentIP, "Most frequent client IP")
	flags.BoolVar(&s.LeastFrequentIP, string(MetricLeastFrequentIP), s.LeastFrequentIP, "Least frequent client IP")
	flags.BoolVar(&s.EventsPerSecond, string(MetricEventsPerSecond), s.EventsPerSecond, "Events per second")
	flags.BoolVar(&s.Bytes, string(MetricBytes), s.Bytes, "Total amount of bytes transferred")
}

func (s *MetricSet) field(m Metric) *bool {
	switch m {
	case MetricMostFrequentIP:
		return &s.MostFrequentIP
	case MetricLeastFrequentIP:
		return &s.LeastFrequentIP
	case MetricEventsPerSecond:
		return &s.EventsPerSecond
	case MetricBytes:
		return &s.Bytes
	}
	return nil
}

func (s *MetricSet) Add(m Metric) error {
	f := s.field(m)
	if f == nil {
		return fmt.Errorf("unknown metric %q", m)
	}
	*f = true
	return nil
}

func (s MetricSet) Has(m Metric) bool {
	f := s.field(m)
	return f != nil && *f
}

// Metrics returns the requested metrics in report order.
func (s MetricSet) Metrics() []Metric {
	var res []Metric
	for _, m := range AllMetrics {
		if s.Has(m) {
			res = append(res, m)
		}
	}
	return res
}

func (s MetricSet) IsEmpty() bool {
	return len(s.Metrics()) == 0
}

func (s MetricSet) needFrequency() bool {
	return s.MostFrequentIP || s.LeastFrequentIP
}
