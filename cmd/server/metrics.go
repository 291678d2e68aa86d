package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts requests by route and status code
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lauvinko_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})

	// requestDuration tracks request latency by route
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lauvinko_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"route"})

	// evolveDuration tracks the sound-change pipeline alone
	evolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lauvinko_evolve_duration_seconds",
		Help:    "Evolution pipeline duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
	}, []string{"context"})
)
