package analyze

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricSet(t *testing.T) {
	s, err := NewMetricSet(MetricBytes, MetricMostFrequentIP)
	require.NoError(t, err)
	// Report order does not depend on request order
	assert.Equal(t, []Metric{MetricMostFrequentIP, MetricBytes}, s.Metrics())
	assert.True(t, s.Has(MetricBytes))
	assert.False(t, s.Has(MetricEventsPerSecond))
	assert.False(t, s.IsEmpty())

	_, err = NewMetricSet("nope")
	assert.Error(t, err)
	assert.True(t, MetricSet{}.IsEmpty())
}

func TestBuildReportEmptyInput(t *testing.T) {
	all, _ := NewMetricSet(AllMetrics...)
	r := BuildReport(all, Results{
		Frequency: NewFrequencyTable(),
		Span:      &SpanAccumulator{},
		Bytes:     &ByteAccumulator{},
	})
	require.Equal(t, 4, r.Len())
	for _, m := range []Metric{MetricMostFrequentIP, MetricLeastFrequentIP, MetricEventsPerSecond} {
		v, ok := r.Get(m)
		assert.True(t, ok, m)
		assert.Nil(t, v, m)
	}
	v, ok := r.Get(MetricBytes)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), v)
}

func TestBuildReportOnlyRequested(t *testing.T) {
	f := NewFrequencyTable()
	f.Observe("1.1.1.1")
	var span SpanAccumulator
	span.Observe(time.Unix(0, 0).Add(time.Hour))
	r := BuildReport(MetricSet{LeastFrequentIP: true}, Results{
		Records:   1,
		Frequency: f,
		Span:      &span,
		Bytes:     &ByteAccumulator{},
	})
	assert.Equal(t, []Entry{{Metric: MetricLeastFrequentIP, Value: AddressCount{"1.1.1.1", 1}}}, r.Entries())
	_, ok := r.Get(MetricBytes)
	assert.False(t, ok)

	r = BuildReport(MetricSet{}, Results{Frequency: f, Span: &span, Bytes: &ByteAccumulator{}})
	assert.Zero(t, r.Len())
}

func TestBuildReportAllMetrics(t *testing.T) {
	f := NewFrequencyTable()
	var span SpanAccumulator
	var b ByteAccumulator
	base := time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)
	for i, client := range []string{"1.1.1.1", "2.2.2.2", "2.2.2.2", "3.3.3.3"} {
		f.Observe(client)
		span.Observe(base.Add(time.Duration(i) * 2 * time.Second))
		b.Observe(250)
	}
	all, err := NewMetricSet(AllMetrics...)
	require.NoError(t, err)
	r := BuildReport(all, Results{Records: 4, Frequency: f, Span: &span, Bytes: &b})

	want := []Entry{
		{Metric: MetricMostFrequentIP, Value: AddressCount{"2.2.2.2", 2}},
		{Metric: MetricLeastFrequentIP, Value: AddressCount{"1.1.1.1", 1}},
		{Metric: MetricEventsPerSecond, Value: 0.67},
		{Metric: MetricBytes, Value: uint64(1000)},
	}
	if diff := cmp.Diff(want, r.Entries()); diff != "" {
		t.Errorf("BuildReport() mismatch (-want +got):\n%s", diff)
	}
}
