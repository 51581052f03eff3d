package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/disgo/pkg/archive"
	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

// setupTestServer creates a test server backed by a temporary archive
func setupTestServer(t *testing.T, config ServerConfig) *Server {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "disgo_api_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	a, err := archive.Open(tmpDir, archive.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return NewServer(a, config, NewMetrics(), zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, target string, body []byte, headers ...string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp APIResponse
	if w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// stream marshals ps back to back.
func stream(t *testing.T, order codec.ByteOrder, ps ...pdu.PDU) []byte {
	t.Helper()
	var buf []byte
	for _, p := range ps {
		raw, err := pdu.MarshalWithLength(p, order)
		require.NoError(t, err)
		buf = append(buf, raw...)
	}
	return buf
}

func TestRouterRoutes(t *testing.T) {
	s := setupTestServer(t, ServerConfig{})
	h := s.Router()

	tests := []struct {
		method string
		target string
		want   int
	}{
		{"GET", "/api/v1/health", http.StatusOK},
		{"GET", "/api/v1/types", http.StatusOK},
		{"GET", "/api/v1/archive/stats", http.StatusOK},
		{"GET", "/api/v1/archive?type=Fire", http.StatusOK},
		{"GET", "/api/v1/archive/not-an-id", http.StatusBadRequest},
		{"POST", "/api/v1/decode", http.StatusBadRequest},
		{"GET", "/api/v1/nope", http.StatusNotFound},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w, _ := do(t, h, tt.method, tt.target, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouterRequiresAPIKeyWhenConfigured(t *testing.T) {
	s := setupTestServer(t, ServerConfig{APIKey: "test-key"})
	h := s.Router()

	w, resp := do(t, h, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)

	w, _ = do(t, h, "GET", "/api/v1/health", nil, "X-API-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp = do(t, h, "GET", "/api/v1/health", nil, "X-API-Key", "test-key")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	// Metrics stay open for scraping.
	w, _ = do(t, h, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := setupTestServer(t, ServerConfig{})

	req := httptest.NewRequest("OPTIONS", "/api/v1/decode", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListenAndServeShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	s := NewServer(nil, ServerConfig{Bind: "127.0.0.1", Port: port}, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port)) + "/api/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
