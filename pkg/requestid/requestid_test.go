package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaolivre/brtypes/pkg/logger"
	"github.com/gestaolivre/brtypes/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, respID)
		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "req-123_abc")
		assert.Equal(t, "req-123_abc", ctxID)
		assert.Equal(t, "req-123_abc", respID)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"a b", "a/b", "<script>", strings.Repeat("a", 129)} {
			ctxID, _ := serve(t, bad)
			assert.NotEqual(t, bad, ctxID)
			assert.NotEmpty(t, ctxID)
		}
	})
}

func TestGenerate(t *testing.T) {
	a, b := requestid.Generate(), requestid.Generate()
	assert.NotEqual(t, a, b)
	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestFromContext(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "x", requestid.FromContext(requestid.WithContext(context.Background(), "x")))
}

func TestLoggerExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "abc"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
