package observekit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/observekit/config"
	"github.com/kbukum/observekit/health"
	"github.com/kbukum/observekit/logging"
	"github.com/kbukum/observekit/metrics"
	"github.com/kbukum/observekit/resource"
	"github.com/kbukum/observekit/server"
	"github.com/kbukum/observekit/tracing"
)

// Observability bundles the configured pillars for a service. Disabled
// pillars are backed by noop providers, so the registries are always
// usable without nil checks. The Logging field is nil when the logging
// pillar is disabled.
type Observability struct {
	// ID identifies this instance in bootstrap log output.
	ID      string
	Config  *config.Config
	Metrics *metrics.Registry
	Tracing *tracing.Registry
	Logging *logging.Service
	Health  *health.Registry

	log       zerolog.Logger
	gatherer  promclient.Gatherer
	resources *resource.Manager
	shutdowns []func(context.Context) error
}

// Setup validates cfg and wires the enabled pillars. When validation
// fails it returns a single error enumerating every violation and
// registers nothing. Health checks are registered unconditionally; each
// reports healthy for a disabled pillar.
func Setup(ctx context.Context, cfg *config.Config, opts ...Option) (*Observability, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	cfg.ApplyDefaults()

	result := config.Validate(cfg)
	if !result.Valid() {
		return nil, fmt.Errorf("invalid observability configuration: %s",
			strings.Join(result.Errors, "; "))
	}

	o := resolveOptions(opts)

	obs := &Observability{
		ID:        uuid.NewString(),
		Config:    cfg,
		Health:    health.NewRegistry(),
		resources: o.resources,
	}
	if obs.resources == nil {
		obs.resources = resource.NewManager()
	}

	if cfg.EnableLogging {
		svc, err := logging.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("building logging pipeline: %w", err)
		}
		obs.Logging = svc
		obs.resources.Register(svc)
	}
	obs.log = bootstrapLogger(o, obs.Logging)

	for _, warning := range result.Warnings {
		obs.log.Warn().Str("warning", warning).Msg("configuration warning")
	}

	if err := obs.setupMetrics(ctx, o); err != nil {
		_ = obs.resources.Close()
		return nil, err
	}
	if err := obs.setupTracing(ctx, o); err != nil {
		_ = obs.resources.Close()
		return nil, err
	}

	obs.Health.Register(health.NewConfigCheck(cfg))
	obs.Health.Register(health.NewTracingCheck(cfg))
	obs.Health.Register(health.NewLoggingCheck(cfg, obs.Logging))

	obs.log.Info().
		Str("instance_id", obs.ID).
		Str("service", cfg.ServiceName).
		Bool("metrics", cfg.EnableMetrics).
		Bool("tracing", cfg.EnableTracing).
		Bool("logging", cfg.EnableLogging).
		Msg("observability initialized")

	return obs, nil
}

// setupMetrics wires the metrics pillar. An injected provider wins over
// the configuration; a disabled pillar gets a noop provider.
func (obs *Observability) setupMetrics(ctx context.Context, o *setupOptions) error {
	var provider metric.MeterProvider

	switch {
	case o.meterProvider != nil:
		provider = o.meterProvider
	case !obs.Config.EnableMetrics:
		provider = metricnoop.NewMeterProvider()
	default:
		built, err := metrics.NewProvider(ctx, obs.Config, o.promRegistry)
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}
		provider = built
		obs.gatherer = built.Gatherer()
		obs.shutdowns = append(obs.shutdowns, built.Shutdown)
		if o.setGlobals {
			otel.SetMeterProvider(built)
		}
		obs.log.Info().
			Int("prometheus_port", obs.Config.PrometheusPort).
			Str("collector_endpoint", obs.Config.CollectorEndpoint).
			Msg("metrics initialized")
	}

	obs.Metrics = metrics.NewRegistry(provider)
	return nil
}

// setupTracing wires the tracing pillar. Tracing enabled without any
// endpoint is not a startup error — the pillar stays on a noop provider
// and the tracing health check reports it as degraded.
func (obs *Observability) setupTracing(ctx context.Context, o *setupOptions) error {
	var provider trace.TracerProvider = o.tracerProvider

	if provider == nil && obs.Config.EnableTracing && obs.Config.TracingEndpoint() != "" {
		built, err := tracing.NewProvider(ctx, obs.Config)
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		provider = built
		obs.shutdowns = append(obs.shutdowns, built.Shutdown)
		if o.setGlobals {
			otel.SetTracerProvider(built)
			otel.SetTextMapPropagator(tracing.Propagator())
		}
		obs.log.Info().
			Str("endpoint", obs.Config.TracingEndpoint()).
			Float64("sample_rate", obs.Config.SampleRate).
			Msg("tracing initialized")
	}

	if provider == nil {
		if obs.Config.EnableTracing {
			obs.log.Warn().Msg("tracing enabled without endpoint — spans will not be exported")
		}
		provider = tracenoop.NewTracerProvider()
	}

	obs.Tracing = tracing.NewRegistry(provider)
	return nil
}

// Manage tracks an application-owned closable handle for release during
// Shutdown.
func (obs *Observability) Manage(c io.Closer) {
	obs.resources.Register(c)
}

// Resources returns the resource manager tracking closable handles.
func (obs *Observability) Resources() *resource.Manager {
	return obs.resources
}

// Shutdown flushes and stops the built providers, releases all tracked
// resources and clears the instrument caches. Idempotent; individual
// failures do not stop the remaining teardown steps.
func (obs *Observability) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(obs.shutdowns) - 1; i >= 0; i-- {
		if err := obs.shutdowns[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	obs.shutdowns = nil

	if err := obs.resources.Close(); err != nil {
		errs = append(errs, err)
	}

	obs.Metrics.Reset()
	obs.Tracing.Reset()
	return errors.Join(errs...)
}

// Mount registers the scrape and health endpoints on an existing engine.
func (obs *Observability) Mount(router *gin.Engine) {
	router.GET("/metrics", server.Metrics(obs.gatherer))
	router.GET("/health", server.Health(obs.Config.ServiceName, obs.Health))
	router.GET("/health/live", server.Live())
}

// ListenAndServe serves the scrape and health endpoints on the
// configured Prometheus port until ctx is canceled.
func (obs *Observability) ListenAndServe(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	obs.Mount(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", obs.Config.PrometheusPort),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	obs.log.Info().Str("addr", srv.Addr).Msg("observability endpoints listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// bootstrapLogger picks the logger for Setup's own messages: an explicit
// option wins, then the logging pillar's logger, then silence.
func bootstrapLogger(o *setupOptions, svc *logging.Service) zerolog.Logger {
	if o.logger != nil {
		return *o.logger
	}
	if svc != nil {
		return svc.Logger()
	}
	return zerolog.Nop()
}
