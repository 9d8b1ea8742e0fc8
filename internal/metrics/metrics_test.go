package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/metrics"
)

func TestObserve(t *testing.T) {
	e := metrics.NewExporter(nil)

	e.Observe(metrics.OutcomeOK, 2*time.Millisecond, 12)
	e.Observe(metrics.OutcomeOK, time.Millisecond, 3)
	e.Observe(metrics.OutcomeEmptyInput, 0, 0)

	count, err := testutil.GatherAndCount(e.Registry(), "textsum_summarize_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `textsum_summarize_requests_total{outcome="ok"} 2`)
	assert.Contains(t, body, `textsum_summarize_requests_total{outcome="empty_input"} 1`)
	assert.Contains(t, body, "textsum_summarize_duration_seconds_count 2")
	assert.Contains(t, body, "textsum_document_sentences_sum 15")
}
