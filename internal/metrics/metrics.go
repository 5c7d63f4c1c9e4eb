// Package metrics defines the Prometheus metrics of the API and of leasing operations.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentsRecorded counts persisted payments by payment mode.
var PaymentsRecorded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leasedesk_payments_recorded_total",
		Help: "How many payments were recorded, partitioned by payment mode.",
	},
	[]string{"mode"},
)

// AllocationRejections counts payment allocations that failed validation.
var AllocationRejections = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leasedesk_allocation_rejections_total",
		Help: "How many payment allocations were rejected, partitioned by reason.",
	},
	[]string{"kind"},
)

// InvoicesIssued counts invoices moved from DRAFT to ISSUED.
var InvoicesIssued = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "leasedesk_invoices_issued_total",
		Help: "How many invoices were issued.",
	},
)

// InvoicesGenerated counts draft invoices created by billing runs.
var InvoicesGenerated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "leasedesk_invoices_generated_total",
		Help: "How many draft invoices were created by billing runs.",
	},
)

// Requests counts HTTP requests by status code, method and route.
var Requests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
	},
	[]string{"code", "method", "route"},
)

// RequestDuration observes HTTP request latencies by status code, method and route.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "route"},
)

var collectors = []prometheus.Collector{
	Requests,
	RequestDuration,
	PaymentsRecorded,
	AllocationRejections,
	InvoicesIssued,
	InvoicesGenerated,
}

// Register registers all metrics with the default registry. On failure,
// the metrics registered so far are unregistered again.
func Register() error {
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister removes all metrics from the default registry.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}
