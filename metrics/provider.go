package metrics

import (
	"context"
	"fmt"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/kbukum/observekit/config"
)

// Provider couples the SDK meter provider with the Prometheus registry
// that backs the scrape endpoint.
type Provider struct {
	*sdkmetric.MeterProvider
	registry *promclient.Registry
}

// Gatherer returns the Prometheus registry for mounting a scrape handler.
func (p *Provider) Gatherer() promclient.Gatherer {
	return p.registry
}

// NewProvider builds a meter provider exposing metrics through a
// Prometheus exporter and, when CollectorEndpoint is set, pushing them
// over OTLP HTTP as well. Pass a registry to reuse an existing Prometheus
// registry, or nil for a fresh one.
//
// The returned provider should be shut down on application exit.
func NewProvider(ctx context.Context, cfg *config.Config, registry *promclient.Registry) (*Provider, error) {
	if registry == nil {
		registry = promclient.NewRegistry()
	}

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdkmetric.Option{
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	}

	if cfg.CollectorEndpoint != "" {
		host, insecure, err := config.SplitEndpoint(cfg.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("resolving collector endpoint: %w", err)
		}

		pushOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			pushOpts = append(pushOpts, otlpmetrichttp.WithInsecure())
		}
		push, err := otlpmetrichttp.New(ctx, pushOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating otlp metric exporter: %w", err)
		}

		readerOpts := []sdkmetric.PeriodicReaderOption{}
		if cfg.ExportInterval > 0 {
			readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.ExportInterval))
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(push, readerOpts...)))
	}

	return &Provider{
		MeterProvider: sdkmetric.NewMeterProvider(opts...),
		registry:      registry,
	}, nil
}

// newResource creates the telemetry resource with service metadata and
// any additional labels from the configuration.
func newResource(cfg *config.Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		attribute.String("environment", cfg.Environment),
	}
	for k, v := range cfg.AdditionalLabels {
		attrs = append(attrs, attribute.String(k, v))
	}

	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}
