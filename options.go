package observekit

import (
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/observekit/resource"
)

// Option configures Setup.
type Option func(*setupOptions)

type setupOptions struct {
	logger         *zerolog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	promRegistry   *promclient.Registry
	resources      *resource.Manager
	setGlobals     bool
}

func resolveOptions(opts []Option) *setupOptions {
	o := &setupOptions{setGlobals: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for bootstrap messages, overriding the
// logging pillar's own logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *setupOptions) { o.logger = &l }
}

// WithMeterProvider injects a pre-built meter provider instead of
// constructing one from the configuration. Setup does not take ownership:
// the provider is not shut down by Shutdown.
func WithMeterProvider(p metric.MeterProvider) Option {
	return func(o *setupOptions) { o.meterProvider = p }
}

// WithTracerProvider injects a pre-built tracer provider instead of
// constructing one from the configuration. Setup does not take ownership.
func WithTracerProvider(p trace.TracerProvider) Option {
	return func(o *setupOptions) { o.tracerProvider = p }
}

// WithPrometheusRegistry reuses an existing Prometheus registry for the
// scrape endpoint instead of creating a fresh one.
func WithPrometheusRegistry(r *promclient.Registry) Option {
	return func(o *setupOptions) { o.promRegistry = r }
}

// WithResourceManager supplies the resource manager that tracks closable
// handles released during Shutdown.
func WithResourceManager(m *resource.Manager) Option {
	return func(o *setupOptions) { o.resources = m }
}

// WithoutGlobals keeps Setup from installing the built providers and
// propagator as the process-wide OpenTelemetry defaults. Useful in tests
// running several independent instances.
func WithoutGlobals() Option {
	return func(o *setupOptions) { o.setGlobals = false }
}
