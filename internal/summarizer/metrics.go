package summarizer

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	RequestTime prometheus.Histogram
	Errors      *prometheus.CounterVec
}

var metrics = &Metrics{
	RequestTime: prometheus.NewHistogram(prometheus.HistogramOpts{
		Subsystem: "summarizer",
		Name:      "request_seconds",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}),
	Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: "summarizer",
		Name:      "errors_total",
	}, []string{"reason"}),
}

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(metrics.RequestTime)
	reg.MustRegister(metrics.Errors)
}
