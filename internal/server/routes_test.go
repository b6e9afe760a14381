package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openmined/pulse/internal/health"
	"github.com/openmined/pulse/internal/server/handlers/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Env: health.EnvTest,
		HTTP: HTTPConfig{
			Addr: DefaultAddr,
		},
	}
}

func newTestRouter(t *testing.T, config *Config) http.Handler {
	t.Helper()
	require.NoError(t, config.Validate())
	handler, err := SetupRoutes(config)
	require.NoError(t, err)
	return handler
}

func do(handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 3)
	assert.Equal(t, health.StatusOK, body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.Contains(t, body, "timestamp")
}

func TestHealthRoute_EchoesCallerRequestID(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/health", map[string]string{"X-Request-Id": "client-req-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-req-1", w.Header().Get("X-Request-Id"))
}

func TestHealthRoute_RepeatedCallsAreConsistent(t *testing.T) {
	router := newTestRouter(t, testConfig())

	var last time.Time
	for i := 0; i < 5; i++ {
		w := do(router, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var st health.Status
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
		assert.Equal(t, health.StatusOK, st.Status)
		assert.Equal(t, "test", st.Environment)

		ts, err := st.Time()
		require.NoError(t, err)
		assert.False(t, ts.Before(last), "timestamp went backwards: %s < %s", ts, last)
		last = ts
	}
}

func TestHealthRoute_EnvironmentFollowsConfig(t *testing.T) {
	config := testConfig()
	config.Env = " Production "
	router := newTestRouter(t, config)

	var st health.Status
	w := do(router, http.MethodGet, "/health", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "production", st.Environment)
}

func TestIndexRoute(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pulse")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, testConfig())

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown-path", http.MethodGet, "/nope", http.StatusNotFound, api.CodeNotFound},
		{"post-health", http.MethodPost, "/health", http.StatusMethodNotAllowed, api.CodeMethodNotAllowed},
		{"delete-health", http.MethodDelete, "/health", http.StatusMethodNotAllowed, api.CodeMethodNotAllowed},
	}
	for _, test := range tests {
		w := do(router, test.method, test.path, nil)
		assert.Equal(t, test.status, w.Code, test.name)

		var body api.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), test.name)
		assert.Equal(t, test.code, body.Code, test.name)
	}
}

func TestCORS(t *testing.T) {
	t.Run("allow all by default", func(t *testing.T) {
		router := newTestRouter(t, testConfig())

		w := do(router, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origins", func(t *testing.T) {
		config := testConfig()
		config.HTTP.CORSOrigins = []string{"http://localhost:3000"}
		router := newTestRouter(t, config)

		w := do(router, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

		w = do(router, http.MethodGet, "/health", map[string]string{"Origin": "http://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	config := testConfig()
	config.HTTP.RateLimit = "2-M"
	router := newTestRouter(t, config)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", nil).Code)

	w := do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body api.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, api.CodeRateLimited, body.Code)
}

func TestSetupRoutes_InvalidRateLimit(t *testing.T) {
	config := testConfig()
	config.HTTP.RateLimit = "lots"

	_, err := SetupRoutes(config)
	assert.Error(t, err)
}
