package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteSavesTotal counts quote save attempts by outcome.
	QuoteSavesTotal *prometheus.CounterVec
	// QuoteReadsTotal counts quote fetch attempts by outcome.
	QuoteReadsTotal *prometheus.CounterVec
	// BluePagePreviewsTotal counts Blue Page preview URLs built.
	BluePagePreviewsTotal prometheus.Counter
	// AgentSearchTotal counts agent searches by outcome.
	AgentSearchTotal *prometheus.CounterVec
	// RateRefreshTotal counts exchange-rate refresh outcomes.
	RateRefreshTotal *prometheus.CounterVec
	// UpstreamLatency records latency of upstream calls in milliseconds.
	UpstreamLatency *prometheus.HistogramVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteSavesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_saves_total",
			Help:      "Count of quote save attempts by outcome.",
		}, []string{"result"})
		QuoteReadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_reads_total",
			Help:      "Count of quote fetch attempts by outcome.",
		}, []string{"result"})
		BluePagePreviewsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blue_page_previews_total",
			Help:      "Number of Blue Page preview URLs built.",
		})
		AgentSearchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_search_total",
			Help:      "Count of agent searches by outcome.",
		}, []string{"result"})
		RateRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_refresh_total",
			Help:      "Count of exchange-rate refresh outcomes.",
		}, []string{"result"})
		UpstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_ms",
			Help:      "Latency for upstream calls in milliseconds.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"upstream", "result"})

		mustRegisterCollector(reg, QuoteSavesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteSavesTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteReadsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteReadsTotal = v
			}
		})
		mustRegisterCollector(reg, BluePagePreviewsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				BluePagePreviewsTotal = v
			}
		})
		mustRegisterCollector(reg, AgentSearchTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				AgentSearchTotal = v
			}
		})
		mustRegisterCollector(reg, RateRefreshTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				RateRefreshTotal = v
			}
		})
		mustRegisterCollector(reg, UpstreamLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				UpstreamLatency = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
