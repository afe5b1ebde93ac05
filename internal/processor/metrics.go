package processor

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeSuccess        = "success"
	outcomeInvalidUpload  = "invalid_upload"
	outcomeUnintelligible = "unintelligible"
	outcomeBackendError   = "backend_error"
	outcomeNoSpeech       = "no_speech"
	outcomeSummaryFailed  = "summary_failed"
	outcomeFailed         = "failed"
)

type Metrics struct {
	Results  *prometheus.CounterVec
	Duration prometheus.Histogram
}

var metrics = &Metrics{
	Results: prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: "pipeline",
		Name:      "results_total",
	}, []string{"outcome"}),
	Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
		Subsystem: "pipeline",
		Name:      "duration_seconds",
		Buckets:   []float64{0.5, 1, 2, 4, 8, 16, 32, 64, 128},
	}),
}

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(metrics.Results)
	reg.MustRegister(metrics.Duration)
}
