package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of a generation attempt.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeConfiguration = "configuration_error"
	OutcomeFailure       = "generation_failure"
)

var (
	generationRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Subsystem: "generation",
		Name:      "requests_total",
		Help:      "Plan generation attempts by outcome.",
	}, []string{"outcome"})
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "workout_planner",
		Subsystem: "generation",
		Name:      "model_call_duration_seconds",
		Help:      "Latency of the call to the text-generation model.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
	})
	lastPlanGenerated = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_planner",
		Subsystem: "generation",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the most recent plan generated successfully.",
	})
)

func init() {
	prometheus.MustRegister(generationRequests, generationDuration, lastPlanGenerated)
}

// RecordGeneration counts one attempt under outcome.
func RecordGeneration(outcome string) {
	generationRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		lastPlanGenerated.Set(float64(time.Now().Unix()))
	}
}

// ObserveModelCall records how long the model took to answer.
func ObserveModelCall(d time.Duration) {
	generationDuration.Observe(d.Seconds())
}
