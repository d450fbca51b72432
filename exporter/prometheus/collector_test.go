package prometheus

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ayjmax/cuckooset"
	"github.com/ayjmax/cuckooset/stats"
)

func newTestSet(t *testing.T) (*cuckooset.Set[string], *stats.Counter) {
	t.Helper()

	counter := stats.NewCounter()
	set, err := cuckooset.New[string](&cuckooset.Options[string]{
		StatsRecorder: counter,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if _, err := set.Add(strconv.Itoa(i)); err != nil {
			t.Fatal(err)
		}
	}
	set.Contains("0")
	set.Contains("not found")
	return set, counter
}

func TestCollector_Describe(t *testing.T) {
	_, counter := newTestSet(t)

	collector := NewCollector("test", "set", counter)
	descsCh := make(chan *prometheus.Desc, 8)

	collector.Describe(descsCh)

	close(descsCh)

	descs := testutil.CollectAndCount(
		collector,
		"test_set_hits",
		"test_set_misses",
		"test_set_adds",
		"test_set_duplicates",
		"test_set_removes",
		"test_set_rejections",
		"test_set_kicks",
		"test_set_resizes",
	)
	if descs != 8 {
		t.Errorf("unexpected number of descs: %d", descs)
	}
}

func TestCollector_Collect(t *testing.T) {
	_, counter := newTestSet(t)

	collector := NewCollector("test", "set", counter)
	metricsCh := make(chan prometheus.Metric, 8)

	collector.Collect(metricsCh)

	close(metricsCh)

	metrics := testutil.CollectAndCount(
		collector,
		"test_set_hits",
		"test_set_misses",
		"test_set_adds",
		"test_set_duplicates",
		"test_set_removes",
		"test_set_rejections",
		"test_set_kicks",
		"test_set_resizes",
	)
	if metrics != 8 {
		t.Errorf("unexpected number of metrics: %d", metrics)
	}
}

func TestCollector_WithSizeProvider(t *testing.T) {
	set, counter := newTestSet(t)

	collector := NewCollector("test", "set", counter, WithSizeProvider(set))

	metrics := testutil.CollectAndCount(
		collector,
		"test_set_hits",
		"test_set_misses",
		"test_set_adds",
		"test_set_duplicates",
		"test_set_removes",
		"test_set_rejections",
		"test_set_kicks",
		"test_set_resizes",
		"test_set_size",
		"test_set_capacity",
	)
	if metrics != 10 {
		t.Errorf("unexpected number of metrics: %d", metrics)
	}
}
