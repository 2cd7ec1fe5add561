package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuote(t *testing.T) {
	m := NewMetrics("pricing", prometheus.NewRegistry())

	m.RecordQuote("state", 1200, true)
	m.RecordQuote("state", 800, false)
	m.RecordQuote("country", 255000, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Quotes.WithLabelValues("state")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("country")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DefaultRates.WithLabelValues("state")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DefaultRates.WithLabelValues("country")))
}

func TestRecordInvoicesAndCache(t *testing.T) {
	m := NewMetrics("pricing", prometheus.NewRegistry())

	m.RecordInvoices(6, 6600)
	m.RecordGeoCache("country", true)
	m.RecordGeoCache("country", false)
	m.RecordGeoCache("region", false)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.InvoicesGenerated))
	assert.Equal(t, 6600.0, testutil.ToFloat64(m.InvoicedAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeoCacheHits.WithLabelValues("country")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeoCacheMisses.WithLabelValues("country")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeoCacheMisses.WithLabelValues("region")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordQuote("state", 1, true)
		m.RecordQuoteError("invalid_coverage")
		m.RecordInvoices(1, 1)
		m.RecordGeoCache("region", true)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics("pricing", prometheus.NewRegistry())
	m.RecordQuote("radius_30", 1000, true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `pricing_quotes_total{coverage="radius_30"} 1`))
}
