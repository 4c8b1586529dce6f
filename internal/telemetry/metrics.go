package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics. Registered on the default registry and exposed by the
// HTTP server's /metrics handler.
var (
	// SocialRequests counts social API calls by backend and outcome.
	SocialRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memescan_social_requests_total",
		Help: "Social API requests by backend and result",
	}, []string{"backend", "result"})

	// QuotaUsed tracks the primary backend's daily search counter.
	QuotaUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "memescan_social_quota_used",
		Help: "Searches used against the primary backend daily quota",
	})

	// TokensDiscovered counts listing records that survived parsing, by source.
	TokensDiscovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memescan_tokens_discovered_total",
		Help: "Tokens discovered by listing source",
	}, []string{"source"})

	// EnrichFailures counts per-token enrichment degradations.
	EnrichFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memescan_enrich_failures_total",
		Help: "Tokens whose enrichment degraded to zero defaults",
	})

	// DiscoveryRuns counts completed discovery runs.
	DiscoveryRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memescan_discovery_runs_total",
		Help: "Completed discovery runs",
	})
)
