package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoadTimestamp records the Unix timestamp of the last successful load.
	LoadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "miniblog_config_load_timestamp",
		Help: "Unix timestamp of last configuration load",
	})

	// ValidationErrorsTotal counts configuration validation errors by field.
	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miniblog_config_validation_errors_total",
		Help: "Total number of configuration validation errors",
	}, []string{"field"})
)

func recordLoad() {
	LoadTimestamp.SetToCurrentTime()
}

func recordValidationError(field string) {
	ValidationErrorsTotal.WithLabelValues(field).Inc()
}
