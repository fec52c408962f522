// Package metrics exposes prometheus collectors for the upload
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsTotal counts upload attempts by outcome.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voicebrief_uploads_total",
		Help: "Number of upload requests by outcome.",
	}, []string{"outcome"})

	// TranscriptionDuration observes how long local recognition takes.
	TranscriptionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voicebrief_transcription_duration_seconds",
		Help:    "Wall-clock duration of local speech recognition.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// SummarizerErrors counts failed summarization calls.
	SummarizerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voicebrief_summarizer_errors_total",
		Help: "Number of failed summarization API calls.",
	})
)
