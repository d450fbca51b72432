package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayjmax/cuckooset"
	exporter "github.com/ayjmax/cuckooset/exporter/prometheus"
	"github.com/ayjmax/cuckooset/stats"
)

func main() {
	// Create a statistics counter and attach it to the set
	counter := stats.NewCounter()
	set := cuckooset.Must(&cuckooset.Options[string]{
		StatsRecorder: counter,
	})

	// Record some activity so the first scrape has data
	for _, value := range []string{"a", "b", "c"} {
		if _, err := set.Add(value); err != nil {
			panic(err)
		}
	}
	set.Contains("a")
	set.Contains("missing")

	// Register a collector that reads the counter on every scrape. The
	// size provider additionally exposes live size and capacity gauges.
	registry := prometheus.NewRegistry()
	registry.MustRegister(exporter.NewCollector(
		"app", "seen", counter,
		exporter.WithSizeProvider(set),
	))

	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	fmt.Println("serving metrics on http://localhost:8080/metrics")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		panic(err)
	}
}
