package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ServiceRequestsTotal counts service method invocations by outcome
	ServiceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memeforge_service_requests_total",
			Help: "Total number of service method invocations",
		},
		[]string{"service", "method", "outcome"},
	)

	// ServiceRequestDuration tracks service method processing time
	ServiceRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memeforge_service_request_duration_seconds",
			Help:    "Service method processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	// TokensCreated counts token registrations by network
	TokensCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memeforge_tokens_created_total",
			Help: "Total number of tokens registered",
		},
		[]string{"network"},
	)

	// MintAddressesGenerated counts placeholder mint address generations
	MintAddressesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "memeforge_mint_addresses_generated_total",
			Help: "Total number of placeholder mint addresses generated",
		},
	)

	// LiquidityControlsUpserted counts liquidity control writes
	LiquidityControlsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "memeforge_liquidity_controls_upserted_total",
			Help: "Total number of liquidity control create/replace operations",
		},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcome maps an error to the metric label used for service request counters.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
