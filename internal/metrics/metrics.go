// Package metrics defines the prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_emails_sent_total",
			Help: "Total number of vendor notification emails sent",
		},
		[]string{"kind"},
	)

	EmailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_emails_failed_total",
			Help: "Total number of vendor notification emails that failed to send",
		},
		[]string{"kind"},
	)

	AuthDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_auth_deletions_total",
			Help: "Total number of auth record deletion attempts by outcome",
		},
		[]string{"outcome"},
	)
)
