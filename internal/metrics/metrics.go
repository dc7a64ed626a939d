package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_completed_total",
		Help: "Total number of completed sales",
	})

	SalesBlockedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_blocked_total",
		Help: "Total number of sales blocked before completion",
	}, []string{"reason"})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_products_created_total",
		Help: "Total number of products created by the admin panel",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_logins_total",
		Help: "Total number of successful logins",
	}, []string{"kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
