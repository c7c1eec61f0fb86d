// Package metrics provides a named-meter registry and instrument builders
// on top of the OpenTelemetry metrics SDK, with a Prometheus exporter for
// scrape-based collection.
//
//	provider, err := metrics.NewProvider(ctx, cfg, nil)
//	defer provider.Shutdown(ctx)
//
//	registry := metrics.NewRegistry(provider)
//	counter, err := registry.Counter("my-service", "orders.total",
//	    metric.WithDescription("Total orders processed"))
//	counter.Add(ctx, 1)
//
// Meters are cached per (name, version) pair: every caller asking for the
// same pair receives the same meter instance until Reset is called.
package metrics
