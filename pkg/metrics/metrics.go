package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// TransferCounter counts transfer attempts by outcome ("ok" or an error kind).
	TransferCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplychain_transfers_total",
			Help: "Total number of product transfer attempts by outcome",
		},
		[]string{"tx_type", "outcome"},
	)

	// LedgerSyncCounter counts external ledger writes by resulting sync status.
	LedgerSyncCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplychain_ledger_sync_total",
			Help: "Total number of external ledger writes by resulting sync status",
		},
		[]string{"status"},
	)

	registerOnce sync.Once
)

// Register adds every collector of this package to reg. Safe to call more than once.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(RequestCounter, RequestDurationHistogram, TransferCounter, LedgerSyncCounter)
	})
}

// HTTPMiddleware records request count and latency for the echo router.
func HTTPMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// echo has not written the error response yet
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			statusStr := strconv.Itoa(status)
			method := c.Request().Method
			path := c.Path()

			RequestCounter.WithLabelValues(serviceName, method, path, statusStr).Inc()
			RequestDurationHistogram.WithLabelValues(serviceName, method, path, statusStr).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
