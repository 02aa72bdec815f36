package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/salesdesk/pkg/metrics"
)

func TestRecordStoreOp(t *testing.T) {
	ok := metrics.StoreOperations.WithLabelValues("order", "create", "ok")
	failed := metrics.StoreOperations.WithLabelValues("order", "create", "error")
	beforeOK, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	metrics.RecordStoreOp("order", "create", nil)
	metrics.RecordStoreOp("order", "create", errors.New("boom"))

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
}

func TestHandlerExposesStoreMetrics(t *testing.T) {
	metrics.RecordStoreOp("user", "find", nil)
	metrics.ObserveDBQuery("select", time.Now())

	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salesdesk_store_operations_total")
	assert.Contains(t, rec.Body.String(), "salesdesk_db_query_duration_seconds")
}
