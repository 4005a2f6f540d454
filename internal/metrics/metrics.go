package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCaseID},
	)

	DropsByRarity = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsByRarity,
			Help: HelpTextDropsByRarity,
		},
		[]string{LabelRarity},
	)

	CardsKept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsKept,
			Help: HelpTextCardsKept,
		},
	)

	CardsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsSold,
			Help: HelpTextCardsSold,
		},
		[]string{LabelSource},
	)

	CentsDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCentsDebited,
			Help: HelpTextCentsDebited,
		},
	)

	CentsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCentsCredited,
			Help: HelpTextCentsCredited,
		},
	)

	InsufficientFunds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsufficientFunds,
			Help: HelpTextInsufficientFunds,
		},
	)
)
