package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	rendered         *prometheus.CounterVec
	constructionErrs *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yaduha_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yaduha_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yaduha_sentences_rendered_total",
				Help: "Sentences rendered by language.",
			},
			[]string{"language"},
		),
		constructionErrs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yaduha_construction_errors_total",
				Help: "Rejected sentence documents by language and error kind.",
			},
			[]string{"language", "kind"},
		),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.rendered, m.constructionErrs)
	return m
}
