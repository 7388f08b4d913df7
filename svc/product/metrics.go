package product

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/depot/pkg/validator"
)

// Metric result labels.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
	resultSaved   = "saved"
)

var (
	// validationsTotal counts product validations by outcome
	// (valid, invalid, error).
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "depot",
		Subsystem: "product",
		Name:      "validations_total",
		Help:      "The total number of product validations by result",
	}, []string{"result"})

	// violationsTotal counts individual rule violations. Useful to see which
	// rule rejects most input.
	violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "depot",
		Subsystem: "product",
		Name:      "violations_total",
		Help:      "The total number of product rule violations by field and kind",
	}, []string{"field", "kind"})

	// validationSeconds includes the uniqueness lookup round-trip.
	validationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "depot",
		Subsystem: "product",
		Name:      "validation_duration_seconds",
		Help:      "Time spent validating a product",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	})

	// savesTotal counts Save calls by outcome (saved, invalid, error).
	savesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "depot",
		Subsystem: "product",
		Name:      "saves_total",
		Help:      "The total number of product saves by result",
	}, []string{"result"})
)

func observeValidation(errs validator.ValidationErrors, err error, d time.Duration) {
	validationSeconds.Observe(d.Seconds())
	switch {
	case err != nil:
		validationsTotal.WithLabelValues(resultError).Inc()
	case errs.IsEmpty():
		validationsTotal.WithLabelValues(resultValid).Inc()
	default:
		validationsTotal.WithLabelValues(resultInvalid).Inc()
		for _, e := range errs {
			violationsTotal.WithLabelValues(e.Field, string(e.Kind)).Inc()
		}
	}
}

func observeSave(err error) {
	switch {
	case err == nil:
		savesTotal.WithLabelValues(resultSaved).Inc()
	case errors.Is(err, validator.ErrValidationFailed):
		savesTotal.WithLabelValues(resultInvalid).Inc()
	default:
		savesTotal.WithLabelValues(resultError).Inc()
	}
}
