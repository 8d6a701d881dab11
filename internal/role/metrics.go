package role

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// inferenceCounter counts inference outcomes by source and label.
var inferenceCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "role_inference_total",
		Help: "Number of role inferences, differentiated by source and resulting role.",
	},
	[]string{"source", "role"},
)

func observeInference(source, role string) {
	inferenceCounter.WithLabelValues(source, role).Inc()
}
