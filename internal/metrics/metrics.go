package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for pricing and billing. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Pricing metrics
	Quotes          *prometheus.CounterVec
	QuoteErrors     *prometheus.CounterVec
	DefaultRates    *prometheus.CounterVec
	QuoteTotalPrice *prometheus.HistogramVec

	// Billing metrics
	InvoicesGenerated prometheus.Counter
	InvoicedAmount    prometheus.Counter

	// Geo cache metrics
	GeoCacheHits   *prometheus.CounterVec
	GeoCacheMisses *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates all collectors and registers them with reg. Pass a
// fresh prometheus.NewRegistry() in tests.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Quotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Total number of price quotes computed",
			},
			[]string{"coverage"},
		),
		QuoteErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_errors_total",
				Help:      "Price quotes that failed, by reason",
			},
			[]string{"reason"},
		),
		DefaultRates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "default_rate_fallbacks_total",
				Help:      "Quotes priced with the built-in default rate",
			},
			[]string{"coverage"},
		),
		QuoteTotalPrice: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_total_price",
				Help:      "Quoted total prices",
				Buckets:   []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"coverage"},
		),
		InvoicesGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoices_generated_total",
				Help:      "Invoices generated and persisted",
			},
		),
		InvoicedAmount: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoiced_amount_total",
				Help:      "Sum of invoice totals including tax",
			},
		),
		GeoCacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geo_cache_hits_total",
				Help:      "Geo registry lookups served from cache",
			},
			[]string{"level"},
		),
		GeoCacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geo_cache_misses_total",
				Help:      "Geo registry lookups that went to the store",
			},
			[]string{"level"},
		),
		gatherer: reg,
	}
}

// Handler returns the exposition handler for the registry the metrics were
// registered with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordQuote records a successful quote.
func (m *Metrics) RecordQuote(coverage string, totalPrice float64, defaultRate bool) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(coverage).Inc()
	m.QuoteTotalPrice.WithLabelValues(coverage).Observe(totalPrice)
	if defaultRate {
		m.DefaultRates.WithLabelValues(coverage).Inc()
	}
}

// RecordQuoteError records a failed quote.
func (m *Metrics) RecordQuoteError(reason string) {
	if m == nil {
		return
	}
	m.QuoteErrors.WithLabelValues(reason).Inc()
}

// RecordInvoices records a persisted invoice batch.
func (m *Metrics) RecordInvoices(count int, total float64) {
	if m == nil {
		return
	}
	m.InvoicesGenerated.Add(float64(count))
	m.InvoicedAmount.Add(total)
}

// RecordGeoCache records a cache lookup for a "country" or "region" key.
func (m *Metrics) RecordGeoCache(level string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.GeoCacheHits.WithLabelValues(level).Inc()
		return
	}
	m.GeoCacheMisses.WithLabelValues(level).Inc()
}
