// Package tracing provides a named-tracer registry and OTLP trace export
// on top of the OpenTelemetry SDK.
//
//	provider, err := tracing.NewProvider(ctx, cfg)
//	defer provider.Shutdown(ctx)
//
//	registry := tracing.NewRegistry(provider)
//	ctx, span, err := registry.StartSpan(ctx, "my-service", "orders.create")
//	defer span.End()
//
// Tracers are cached per (name, version) pair, the same contract as the
// meter registry in package metrics. A span returned by StartSpan may be
// non-recording when the sampler declines it — that is normal operation,
// not an error.
package tracing
