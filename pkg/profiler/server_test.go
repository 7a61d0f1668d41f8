package profiler

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	server := New(0, zerolog.Nop())
	require.NoError(t, server.Start(context.Background()), "Start() error")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})
	return server
}

func TestServer_AddrBeforeStart(t *testing.T) {
	assert.Empty(t, New(0, zerolog.Nop()).Addr())
}

func TestServer_BindsLoopback(t *testing.T) {
	server := startServer(t)
	assert.True(t, strings.HasPrefix(server.Addr(), "127.0.0.1:"), "addr %s", server.Addr())
}

func TestServer_LogsStart(t *testing.T) {
	var buf bytes.Buffer
	server := New(0, zerolog.New(&buf))
	require.NoError(t, server.Start(context.Background()))
	require.NoError(t, server.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"cmp":"profiler"`)
	assert.Contains(t, buf.String(), "starting profiler server")
}

func TestServer_PortInUse(t *testing.T) {
	first := startServer(t)
	port := first.listener.Addr().(*net.TCPAddr).Port

	err := New(port, zerolog.Nop()).Start(context.Background())
	assert.ErrorContains(t, err, "failed to create listener")
}

func TestServer_PprofEndpoints(t *testing.T) {
	baseURL := "http://" + startServer(t).Addr()

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "index", endpoint: "/debug/pprof/"},
		{name: "cmdline", endpoint: "/debug/pprof/cmdline"},
		{name: "symbol", endpoint: "/debug/pprof/symbol"},
		{name: "heap", endpoint: "/debug/pprof/heap"},
		{name: "goroutine", endpoint: "/debug/pprof/goroutine?debug=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(baseURL + tt.endpoint)
			require.NoError(t, err, "GET %s error", tt.endpoint)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}
