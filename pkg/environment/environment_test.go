package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaolivre/brtypes/pkg/environment"
)

func TestParse(t *testing.T) {
	tests := map[string]environment.Environment{
		"production":  environment.Production,
		"PROD":        environment.Production,
		" staging ":   environment.Staging,
		"stage":       environment.Staging,
		"development": environment.Development,
		"dev":         environment.Development,
		"":            environment.Development,
		"qa":          environment.Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, environment.Parse(in), in)
	}
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, environment.Environment(""), environment.FromContext(ctx))
	assert.False(t, environment.IsProduction(ctx))

	ctx = environment.WithContext(ctx, environment.Production)
	assert.True(t, environment.IsProduction(ctx))
	assert.False(t, environment.IsDevelopment(ctx))

	//nolint:staticcheck // nil context is handled
	assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
}

func TestMiddleware(t *testing.T) {
	var got environment.Environment
	h := environment.Middleware(environment.Staging)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, environment.Staging, got)
}

func TestLoggerExtractor(t *testing.T) {
	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Production))
	require.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())
}
