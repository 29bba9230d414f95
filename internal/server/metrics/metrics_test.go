package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_AuthOutcome(t *testing.T) {
	m := New()

	m.AuthOutcome(OperationLogin, OutcomeSuccess)
	m.AuthOutcome(OperationLogin, OutcomeSuccess)
	m.AuthOutcome(OperationLogin, OutcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(OperationLogin, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(OperationLogin, OutcomeInvalid)))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("POST /v1/auth/login", http.MethodPost, http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST /v1/auth/login", http.MethodPost, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetrics_StoreReload(t *testing.T) {
	m := New()

	m.StoreReload(nil)
	m.StoreReload(errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeReloads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeReloads.WithLabelValues("error")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.AuthOutcome(OperationValidate, OutcomeEntitled)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `licauth_auth_outcomes_total{operation="validate",outcome="entitled"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
