package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceComputations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splittab",
		Name:      "balance_computations_total",
		Help:      "Total number of full group balance computations",
	})
	unresolvedClearingAccounts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splittab",
		Name:      "unresolved_clearing_accounts_total",
		Help:      "Clearing accounts left unresolved because of reference cycles",
	})
	settlementPlanEntries = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "splittab",
		Name:      "settlement_plan_entries",
		Help:      "Number of payments per computed settlement plan",
		Buckets:   prometheus.LinearBuckets(0, 2, 10),
	})
)
