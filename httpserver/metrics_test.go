package httpserver_test

import (
	"errors"
	"fmt"
	"moviecatalog/errs"
	"moviecatalog/pkg/prometheus"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStoreFailuresMetric(t *testing.T) {
	tests := []struct {
		name     string
		route    string
		err      error
		status   int
		expected float64
	}{
		{
			name:     "store error counts",
			route:    "/failures/store",
			err:      fmt.Errorf("mongo: find movies: %w", errors.New("connection reset")),
			status:   http.StatusInternalServerError,
			expected: 1,
		},
		{
			name:     "internal application error counts",
			route:    "/failures/internal",
			err:      errs.Errorf(errs.EINTERNAL, "store unavailable"),
			status:   http.StatusInternalServerError,
			expected: 1,
		},
		{
			name:     "not implemented does not count",
			route:    "/failures/not-implemented",
			err:      errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured"),
			status:   http.StatusNotImplemented,
			expected: 0,
		},
		{
			name:     "echo 5xx does not count",
			route:    "/failures/echo",
			err:      echo.NewHTTPError(http.StatusServiceUnavailable, "unavailable"),
			status:   http.StatusServiceUnavailable,
			expected: 0,
		},
		{
			name:     "not found does not count",
			route:    "/failures/not-found",
			err:      errs.Errorf(errs.ENOTFOUND, "movie not found"),
			status:   http.StatusNotFound,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			addRoute(server, tt.route, func(c echo.Context) error {
				return tt.err
			})

			response := makeRequest(server, http.MethodGet, tt.route, nil)

			assert.Equal(t, tt.status, response.Code)
			assert.Equal(t, tt.expected, testutil.ToFloat64(prometheus.StoreFailures.WithLabelValues(tt.route)))
		})
	}
}
