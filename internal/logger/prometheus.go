package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	counter     *prometheus.CounterVec //nolint:gochecknoglobals
	counterOnce sync.Once              //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	service string
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || level == zerolog.Disabled {
		return
	}

	counter.WithLabelValues(h.service, level.String()).Inc()
}

// NewPrometheusHook returns a hook feeding log_statements_total for service.
// The counter is registered once; Init may run more than once.
func NewPrometheusHook(service string) PrometheusHook {
	counterOnce.Do(func() {
		counter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "log_statements_total",
				Help: "Number of log statements, differentiated by service and log level.",
			},
			[]string{"service", "level"},
		)
	})

	return PrometheusHook{service: service}
}
