package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kbukum/observekit/health"
)

// Health returns a handler reporting the aggregate health of the
// observability configuration. Responds 503 only when a check is
// unhealthy; degraded still returns 200 with the issues listed.
func Health(serviceName string, registry *health.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := registry.CheckAll(c.Request.Context())
		overall := health.Overall(results)

		httpStatus := http.StatusOK
		if overall == health.StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":    overall,
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"checks":    results,
		})
	}
}

// Live returns a trivial liveness handler.
func Live() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
	}
}

// Metrics returns the Prometheus scrape handler for the given gatherer.
// A nil gatherer falls back to the default Prometheus registry.
func Metrics(gatherer prometheus.Gatherer) gin.HandlerFunc {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	handler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return gin.WrapH(handler)
}
