package httpserver

import (
	"moviecatalog/pkg/prometheus"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) RegisterMetricsRoutes() {
	s.Router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// requestMetrics records one observation per request. The status is derived
// from the returned error because the error handler has not run yet.
func (s *Server) requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status, _ = statusFor(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		prometheus.RequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		prometheus.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if isStoreFailure(err) {
			prometheus.StoreFailures.WithLabelValues(route).Inc()
		}
		return err
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
				s.Logger.Warnw("request", fields...)
				return nil
			}
			s.Logger.Infow("request", fields...)
			return nil
		},
	})
}
