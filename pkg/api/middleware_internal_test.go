package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaolivre/brtypes/pkg/environment"
	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/logger"
)

func TestRecoverer(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Catalog())
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	h := recoverer(log, tr)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal", body.Error.Code)
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.Contains(t, buf.String(), "panic serving request")

	t.Run("abort handler is re-raised", func(t *testing.T) {
		h := recoverer(log, tr)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.Panics(t, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	h := requestLogger(logger.New(logger.WithOutput(buf)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/cpf/1", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "/v1/cpf/1", entry["path"])
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "rate_limited", errorCode("errors.rate_limited"))
	assert.Equal(t, "plain", errorCode("plain"))
}

func TestMiddlewares_PanicIsMeasured(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Catalog())
	require.NoError(t, err)

	h := &handlers{tr: tr, log: logger.Discard(), metrics: NewMetrics()}
	var next http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	stack := h.middlewares(environment.Development)
	for i := len(stack) - 1; i >= 0; i-- {
		next = stack[i](next)
	}

	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues("unmatched", "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(h.metrics.duration))
}

func TestRateLimit_RetryAfterRoundsUp(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Catalog())
	require.NoError(t, err)

	m := NewMetrics()
	h := rateLimit(1, 500*time.Millisecond, tr, m)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.limited))
}
