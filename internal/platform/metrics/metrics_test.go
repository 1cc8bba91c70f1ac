package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_RepoCalls(t *testing.T) {
	p := metrics.NewPrometheus()

	p.ObserveRepo("donor", "insert", true, 3*time.Millisecond)
	p.ObserveRepo("donor", "insert", false, time.Millisecond)
	p.ObserveRepo("donor", "insert", true, time.Millisecond)

	expected := `
# HELP donation_tracker_repository_calls_total Repository calls by entity, operation and result.
# TYPE donation_tracker_repository_calls_total counter
donation_tracker_repository_calls_total{entity="donor",op="insert",result="error"} 1
donation_tracker_repository_calls_total{entity="donor",op="insert",result="success"} 2
`
	err := testutil.GatherAndCompare(p.Registry(), strings.NewReader(expected), "donation_tracker_repository_calls_total")
	assert.NoError(t, err)
}

func TestPrometheus_StoreState(t *testing.T) {
	p := metrics.NewPrometheus()

	p.SetStoreState("donor", "loading")
	p.SetStoreState("donor", "loaded")
	p.SetStoreSize("donor", 12)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `donation_tracker_store_loading_state{state="loaded",store="donor"} 1`)
	assert.Contains(t, body, `donation_tracker_store_loading_state{state="loading",store="donor"} 0`)
	assert.Contains(t, body, `donation_tracker_store_entities{store="donor"} 12`)
}
