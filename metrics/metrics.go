// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus instrumentation for the server:
// request counters and latency histograms recorded by the logging
// middleware, and counters for calls to the external AI API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothfeedback_http_requests_total",
		Help: "HTTP requests handled, by method, route pattern and status.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boothfeedback_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	genaiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boothfeedback_genai_calls_total",
		Help: "Calls to the external generative AI API, by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// RecordRequest counts one handled HTTP request. path should be the route
// pattern, not the raw URL, to keep cardinality bounded.
func RecordRequest(method, path string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordGenAICall counts one external AI call.
func RecordGenAICall(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	genaiCalls.WithLabelValues(operation, outcome).Inc()
}

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
