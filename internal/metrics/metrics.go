// Package metrics defines the prometheus collectors for the HTTP surface
// and the settlement engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and
	// status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "splitledger_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ExpensesCreated counts successfully created expenses by split method.
	ExpensesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_expenses_created_total",
		Help: "Total number of expenses created.",
	}, []string{"split_method"})

	// SettlementPlans counts computed settlement plans.
	SettlementPlans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_settlement_plans_total",
		Help: "Total number of settlement plans computed.",
	})

	// SplitErrors counts split validation failures by error kind.
	SplitErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_split_errors_total",
		Help: "Total number of split validation failures.",
	}, []string{"kind"})
)
