package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Outcome labels
const (
	StatusSuccess        = "success"
	StatusInvalidRequest = "invalid_request"
	StatusProviderError  = "provider_error"
)

// ConversionMetrics holds the collectors for conversions and provider calls.
type ConversionMetrics struct {
	ConversionsTotal      *prometheus.CounterVec
	ProviderAttemptsTotal *prometheus.CounterVec
	FallbacksTotal        *prometheus.CounterVec
}

// NewConversionMetrics creates the conversion collectors and registers them in reg.
func NewConversionMetrics(reg prometheus.Registerer) *ConversionMetrics {
	factory := promauto.With(reg)

	return &ConversionMetrics{
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "Finished conversions by the provider that produced the outcome",
			},
			[]string{"provider", "status"},
		),
		ProviderAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_provider_attempts_total",
				Help: "Conversion attempts against a single provider",
			},
			[]string{"provider", "status"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_provider_fallbacks_total",
				Help: "Fallbacks from a failed provider to the alternate one",
			},
			[]string{"from", "to"},
		),
	}
}

// ObserveAttempt records the outcome of one provider attempt.
func (m *ConversionMetrics) ObserveAttempt(provider models.Provider, err error) {
	m.ProviderAttemptsTotal.WithLabelValues(string(provider), StatusOf(err)).Inc()
}

// ObserveFallback records a fallback between providers.
func (m *ConversionMetrics) ObserveFallback(from, to models.Provider) {
	m.FallbacksTotal.WithLabelValues(string(from), string(to)).Inc()
}

// ObserveConversion records the final outcome of a conversion.
func (m *ConversionMetrics) ObserveConversion(provider models.Provider, err error) {
	m.ConversionsTotal.WithLabelValues(string(provider), StatusOf(err)).Inc()
}

// StatusOf maps an error to its status label.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case models.IsInvalidRequest(err):
		return StatusInvalidRequest
	default:
		return StatusProviderError
	}
}
