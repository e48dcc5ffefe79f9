package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FramesExtractedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracesim_frames_extracted_total",
		Help: "Total number of stack frames extracted from trace inputs.",
	}, []string{"input"})

	ComparisonsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracesim_comparisons_total",
		Help: "Total number of trace pair comparisons performed.",
	})

	ComparisonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tracesim_comparison_seconds",
		Help:    "Time spent comparing one trace pair.",
		Buckets: prometheus.DefBuckets,
	})

	LastSimilarityPercent = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracesim_last_similarity_percent",
		Help: "Similarity percentage of the most recent comparison per pair.",
	}, []string{"pair"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracesim_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RecomparesThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracesim_recompares_throttled_total",
		Help: "Total number of watch-mode recomparisons dropped by the rate limiter.",
	})

	ReportExtractionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracesim_report_extractions_total",
		Help: "Total number of stacktraces extracted from JSONL report files.",
	})
)
