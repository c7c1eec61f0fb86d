package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Common holds the standard request/operation/error instruments most
// services need, pre-created on the service's meter.
type Common struct {
	service string

	requestTotal      metric.Int64Counter
	requestDuration   metric.Float64Histogram
	requestActive     metric.Int64UpDownCounter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	errorTotal        metric.Int64Counter
}

// NewCommon creates the common instrument set on the named service meter.
func NewCommon(registry *Registry, service string) (*Common, error) {
	meter, err := registry.GetOrCreate(service)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter("request.total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("request.duration",
		metric.WithDescription("Duration of requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.duration histogram: %w", err)
	}

	requestActive, err := meter.Int64UpDownCounter("request.active",
		metric.WithDescription("Number of currently active requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.active gauge: %w", err)
	}

	operationTotal, err := meter.Int64Counter("operation.total",
		metric.WithDescription("Total number of operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating operation.total counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("operation.duration",
		metric.WithDescription("Duration of operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating operation.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Common{
		service:           service,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestActive:     requestActive,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		errorTotal:        errorTotal,
	}, nil
}

// RecordRequestStart increments the active request count.
func (c *Common) RecordRequestStart(ctx context.Context) {
	c.requestActive.Add(ctx, 1)
}

// RecordRequestEnd decrements active requests and records the completed request.
func (c *Common) RecordRequestEnd(ctx context.Context, method, status string, duration time.Duration) {
	c.requestActive.Add(ctx, -1)
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", c.service),
		attribute.String("method", method),
		attribute.String("status", status),
	))
	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service", c.service),
		attribute.String("method", method),
	))
}

// RecordOperation records an operation execution.
func (c *Common) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	c.operationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", c.service),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
	c.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service", c.service),
		attribute.String("operation", operation),
	))
}

// RecordError records an error by type and component.
func (c *Common) RecordError(ctx context.Context, errType, component string) {
	c.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
