package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gestaolivre/brtypes/pkg/httpserver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var client = &http.Client{
	Timeout:   2 * time.Second,
	Transport: &http.Transport{DisableKeepAlives: true},
}

func testConfig() httpserver.Config {
	cfg := httpserver.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = 200 * time.Millisecond
	return cfg
}

func start(t *testing.T, ctx context.Context, srv *httpserver.Server, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	select {
	case <-srv.Ready():
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not return")
		return nil
	}
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httpserver.New(testConfig())
	done := start(t, ctx, srv, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	resp, err := client.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, wait(t, done))
	assert.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
}

func TestRun_ManualShutdown(t *testing.T) {
	srv := httpserver.New(testConfig())
	done := start(t, context.Background(), srv, nil)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
}

func TestRun_AlreadyRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httpserver.New(testConfig())
	done := start(t, ctx, srv, nil)

	err := srv.Run(ctx, nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, wait(t, done))
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig()
	cfg.Addr = ln.Addr().String()
	err = httpserver.New(cfg).Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestRun_WithListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	srv := httpserver.New(httpserver.Config{}, httpserver.WithListener(ln))
	done := start(t, ctx, srv, nil)
	assert.Equal(t, ln.Addr().String(), srv.Addr())

	cancel()
	require.NoError(t, wait(t, done))
}

func TestShutdown_BeforeRun(t *testing.T) {
	assert.NoError(t, httpserver.New(testConfig()).Shutdown(context.Background()))
	assert.Empty(t, httpserver.New(testConfig()).Addr())
}

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks []func(context.Context) error
		code   int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []func(context.Context) error{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("catalog not loaded") },
		}, http.StatusServiceUnavailable, "NOT_READY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
