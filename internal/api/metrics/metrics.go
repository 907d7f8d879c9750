// Package metrics defines all custom Prometheus metrics for the ordering
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry via promauto at
// package load; HTTP-level metrics come separately from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// AuthFailuresTotal counts requests rejected by the authorization gate.
// Label:
//   - stage: "token" (401 from the bearer check), "role" (403 from the admin
//     lookup), or "owner" (403 from the ownership check)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authorization gate, by stage.",
	},
	[]string{"stage"},
)

// TokensIssuedTotal counts successfully issued identity tokens.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued at login.",
	},
)

// PaymentsRecordedTotal counts recorded payments.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded.",
	},
)

// ReportCacheTotal counts report cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (recomputed)
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of report cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ReportDuration measures how long an aggregation report takes end-to-end.
// Label:
//   - report: "global" or "categories"
var ReportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of aggregation report requests, cache hits included.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"report"},
)
