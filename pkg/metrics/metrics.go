package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CatalogReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formbridge", Name: "catalog_reads_total", Help: "Number of catalog reads by outcome."},
		[]string{"outcome"},
	)
	SubmissionsStored = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "formbridge", Name: "submissions_stored_total", Help: "Number of submissions persisted to the datastore."},
	)
	SubmissionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formbridge", Name: "submission_failures_total", Help: "Number of failed form submissions by reason."},
		[]string{"reason"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formbridge", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formbridge", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(CatalogReads)
	reg.MustRegister(SubmissionsStored)
	reg.MustRegister(SubmissionFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
