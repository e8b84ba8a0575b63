// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Upstream (bundle.social) Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of bundle.social API calls",
		},
		[]string{"operation", "outcome"}, // outcome: 2xx, 4xx, 5xx, error
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of bundle.social API calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	UpstreamRateLimitWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upstream_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the outbound rate limiter",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Webhook Metrics
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of webhook deliveries by event type and outcome",
		},
		[]string{"type", "outcome"}, // outcome: accepted, missing_signature, invalid_signature, malformed
	)

	WebhookRedeliveryKeys = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "webhook_redelivery_keys",
			Help: "Number of webhook signatures remembered for redelivery detection",
		},
	)

	WebhookRedeliveryPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_redelivery_pruned_total",
			Help: "Total number of expired webhook signatures pruned",
		},
	)

	EventBusPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_bus_publish_total",
			Help: "Total number of events published on the in-process bus",
		},
		[]string{"topic", "result"},
	)

	EventBridgeMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_bridge_messages_total",
			Help: "Total number of bus messages handled by the WebSocket bridge",
		},
		[]string{"outcome"}, // outcome: forwarded, undelivered, malformed
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)
)

// RecordAPIRequest records an API request metric. endpoint should be the
// route pattern, not the raw path, to keep label cardinality bounded.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamCall records one bundle.social API call. status is the HTTP
// status, or 0 when the call failed before a response arrived.
func RecordUpstreamCall(operation string, status int, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, StatusClass(status)).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// StatusClass buckets an HTTP status into "2xx".."5xx", or "error" for 0.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}

// RecordWebhookEvent counts a webhook delivery.
func RecordWebhookEvent(eventType, outcome string) {
	if eventType == "" {
		eventType = "unknown"
	}
	WebhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
}

// RecordEventPublish counts an event bus publish.
func RecordEventPublish(topic string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	EventBusPublishTotal.WithLabelValues(topic, result).Inc()
}

// RecordRedeliveryPrune records a prune pass over the redelivery set.
func RecordRedeliveryPrune(removed, remaining int) {
	WebhookRedeliveryPruned.Add(float64(removed))
	WebhookRedeliveryKeys.Set(float64(remaining))
}

// RecordBridgeMessage counts a message handled by the WebSocket bridge.
func RecordBridgeMessage(outcome string) {
	EventBridgeMessagesTotal.WithLabelValues(outcome).Inc()
}
