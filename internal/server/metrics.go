package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showroom_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"status", "route"})
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "showroom_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	StoreWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showroom_store_writes_total",
		Help: "Total number of successful configuration writes",
	}, []string{"operation"})
	ImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showroom_imports_total",
		Help: "Total number of import attempts by result",
	}, []string{"result"})
)
