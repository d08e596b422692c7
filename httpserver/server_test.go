// nolint: funlen
package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"moviecatalog/errs"
	"moviecatalog/httpserver"
	"moviecatalog/pkg/config"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AppEnv = "local"
	cfg.Port = 8080
	return cfg
}

func newTestServer(t *testing.T, opts ...httpserver.Options) *httpserver.Server {
	t.Helper()
	opts = append([]httpserver.Options{httpserver.WithConfig(testConfig())}, opts...)
	server, err := httpserver.New(opts...)
	require.NoError(t, err)
	return server
}

func TestNew(t *testing.T) {
	server := newTestServer(t)

	assert.NotNil(t, server.Router, "Router should be initialized")
	assert.Equal(t, ":8080", server.Addr)
	assert.Empty(t, server.AllowOrigins, "CORS is off unless origins are configured")
	assert.NotNil(t, server.Logger)
}

func TestNew_Defaults(t *testing.T) {
	server, err := httpserver.New()
	require.NoError(t, err)

	assert.Equal(t, ":8080", server.Addr)
	assert.Nil(t, server.MovieService)
}

func TestNew_OptionErrors(t *testing.T) {
	_, err := httpserver.New(httpserver.WithConfig(nil))
	assert.Error(t, err)

	_, err = httpserver.New(httpserver.WithLogger(nil))
	assert.Error(t, err)
}

func TestWithConfig_SetsAddrAndOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 9090
	cfg.AllowOrigins = "https://a.example, https://b.example"

	server := newTestServer(t, httpserver.WithConfig(cfg), httpserver.WithLogger(zap.NewNop().Sugar()))

	assert.Equal(t, ":9090", server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, server.AllowOrigins)
}

func TestServerStartAndShutdown(t *testing.T) {
	server := newTestServer(t)
	port := allocateRandomPort(t)
	server.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/healthcheck", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("server did not stop within timeout")
	}
}

func TestRegisterGlobalMiddlewares(t *testing.T) {
	server := newTestServer(t)
	addRoute(server, "/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	})

	response := makeRequest(server, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXRequestID), "Request ID middleware should add header")
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXContentTypeOptions), "Secure middleware should add headers")
}

func TestCORSConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		allowOrigins  string
		requestOrigin string
		expectCORS    bool
	}{
		{
			name:          "wildcard allows all origins",
			allowOrigins:  "*",
			requestOrigin: "https://example.com",
			expectCORS:    true,
		},
		{
			name:          "specific origin is allowed",
			allowOrigins:  "https://example.com",
			requestOrigin: "https://example.com",
			expectCORS:    true,
		},
		{
			name:          "empty origins disables CORS",
			allowOrigins:  "",
			requestOrigin: "https://example.com",
			expectCORS:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.AllowOrigins = tt.allowOrigins
			server := newTestServer(t, httpserver.WithConfig(cfg))

			response := makeRequest(server, http.MethodGet, "/healthcheck", map[string]string{"Origin": tt.requestOrigin})

			corsHeader := response.Header().Get(echo.HeaderAccessControlAllowOrigin)
			if tt.expectCORS {
				assert.NotEmpty(t, corsHeader, "CORS header should be present")
			} else {
				assert.Empty(t, corsHeader, "CORS header should not be present")
			}
		})
	}
}

func TestMiddlewareRecoveryBehavior(t *testing.T) {
	server := newTestServer(t)
	addRoute(server, "/panic", func(c echo.Context) error {
		panic("test panic")
	})

	response := makeRequest(server, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, response.Code)
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name               string
		error              error
		expectedStatusCode int
		expectedMessage    string
	}{
		{
			name:               "invalid error returns 400",
			error:              errs.Errorf(errs.EINVALID, "invalid input"),
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "invalid input",
		},
		{
			name:               "conflict error returns 409",
			error:              errs.Errorf(errs.ECONFLICT, "resource already exists"),
			expectedStatusCode: http.StatusConflict,
			expectedMessage:    "resource already exists",
		},
		{
			name:               "unauthorized error returns 401",
			error:              errs.Errorf(errs.EUNAUTHORIZED, "unauthorized access"),
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "unauthorized access",
		},
		{
			name:               "not implemented error returns 501",
			error:              errs.Errorf(errs.ENOTIMPLEMENTED, "feature not implemented"),
			expectedStatusCode: http.StatusNotImplemented,
			expectedMessage:    "feature not implemented",
		},
		{
			name:               "internal error returns 500 with generic message",
			error:              errs.Errorf(errs.EINTERNAL, "database connection failed"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Internal server error",
		},
		{
			name:               "unknown error returns 500 with generic message",
			error:              errors.New("some random error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Internal server error",
		},
		{
			name:               "context error returns 500",
			error:              fmt.Errorf("mongo: find: %w", context.DeadlineExceeded),
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Internal server error",
		},
		{
			name:               "echo http error preserves status code",
			error:              echo.NewHTTPError(http.StatusForbidden, "forbidden"),
			expectedStatusCode: http.StatusForbidden,
			expectedMessage:    "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			addRoute(server, "/error", func(c echo.Context) error {
				return tt.error
			})

			response := makeRequest(server, http.MethodGet, "/error", nil)

			assert.Equal(t, tt.expectedStatusCode, response.Code)
			assert.Equal(t, "application/json; charset=utf-8", response.Header().Get(echo.HeaderContentType))
			var body map[string]string
			require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["error"])
		})
	}
}

func TestCustomErrorHandler_NotFoundHasEmptyBody(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		error error
	}{
		{name: "application not found", path: "/missing", error: errs.Errorf(errs.ENOTFOUND, "resource not found")},
		{name: "wrapped not found", path: "/missing", error: fmt.Errorf("lookup: %w", errs.Errorf(errs.ENOTFOUND, "gone"))},
		{name: "unknown route", path: "/no/such/route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			if tt.error != nil {
				addRoute(server, tt.path, func(c echo.Context) error {
					return tt.error
				})
			}

			response := makeRequest(server, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, response.Code)
			assert.Empty(t, response.Body.String())
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	server := newTestServer(t)
	makeRequest(server, http.MethodGet, "/healthcheck", nil)

	response := makeRequest(server, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "catalog_http_requests_total")
}

func TestSwaggerRoute(t *testing.T) {
	server := newTestServer(t)

	response := makeRequest(server, http.MethodGet, "/swagger/doc.json", nil)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "/api/movies/search")
}

func allocateRandomPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func addRoute(server *httpserver.Server, path string, h echo.HandlerFunc) {
	server.Router.GET(path, h)
}
