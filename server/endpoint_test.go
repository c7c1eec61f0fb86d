package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kbukum/observekit/health"
)

type staticCheck struct {
	name   string
	status health.Status
}

func (s staticCheck) Name() string { return s.name }

func (s staticCheck) CheckHealth(ctx context.Context) health.Result {
	return health.Result{Name: s.name, Status: s.status}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHealth_OK(t *testing.T) {
	registry := health.NewRegistry()
	registry.Register(staticCheck{name: "config", status: health.StatusHealthy})
	registry.Register(staticCheck{name: "tracing", status: health.StatusDegraded})

	router := newTestRouter()
	router.GET("/health", Health("svc", registry))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("degraded must still return 200, got %d", rec.Code)
	}

	var body struct {
		Status  string          `json:"status"`
		Service string          `json:"service"`
		Checks  []health.Result `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status != string(health.StatusDegraded) {
		t.Errorf("expected degraded overall, got %s", body.Status)
	}
	if body.Service != "svc" {
		t.Errorf("expected service name in response, got %s", body.Service)
	}
	if len(body.Checks) != 2 {
		t.Errorf("expected 2 checks, got %d", len(body.Checks))
	}
}

func TestHealth_Unavailable(t *testing.T) {
	registry := health.NewRegistry()
	registry.Register(staticCheck{name: "config", status: health.StatusUnhealthy})

	router := newTestRouter()
	router.GET("/health", Health("svc", registry))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestLive(t *testing.T) {
	router := newTestRouter()
	router.GET("/health/live", Live())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alive") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "endpoint_test_total",
		Help: "Test counter.",
	})
	registry.MustRegister(counter)
	counter.Inc()

	router := newTestRouter()
	router.GET("/metrics", Metrics(registry))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "endpoint_test_total 1") {
		t.Errorf("expected counter sample in exposition, got:\n%s", rec.Body.String())
	}
}
