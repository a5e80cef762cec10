package analyze

// Entry is one metric of a Report. Value is nil when the metric has no
// defined result, otherwise an AddressCount (mfip, lfip), a float64 (eps)
// or a uint64 (bytes).
type Entry struct {
	Metric Metric
	Value  any
}

// Report holds the requested metrics in report order. It is not modified
// after BuildReport returns.
type Report struct {
	entries []Entry
}

// Results are the accumulators of one run.
type Results struct {
	Records   uint64
	Frequency *FrequencyTable
	Span      *SpanAccumulator
	Bytes     *ByteAccumulator
}

func BuildReport(metrics MetricSet, res Results) Report {
	var r Report
	for _, m := range metrics.Metrics() {
		var value any
		switch m {
		case MetricMostFrequentIP:
			if ac, ok := res.Frequency.MostFrequent(); ok {
				value = ac
			}
		case MetricLeastFrequentIP:
			if ac, ok := res.Frequency.LeastFrequent(); ok {
				value = ac
			}
		case MetricEventsPerSecond:
			if eps, ok := EventsPerSecond(res.Records, res.Span); ok {
				value = eps
			}
		case MetricBytes:
			value = res.Bytes.Total()
		}
		r.entries = append(r.entries, Entry{Metric: m, Value: value})
	}
	return r
}

// Entries returns a copy of the report entries in order.
func (r Report) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

func (r Report) Len() int {
	return len(r.entries)
}

// Get returns the value of m and whether m was requested.
func (r Report) Get(m Metric) (any, bool) {
	for _, e := range r.entries {
		if e.Metric == m {
			return e.Value, true
		}
	}
	return nil, false
}
