// Package observekit wires metrics, tracing and logging behind a single
// Setup call.
//
// Each pillar is independent: any combination of EnableMetrics,
// EnableTracing and EnableLogging is valid, including none. Setup
// validates the configuration first and fails fast with every violation
// when it is invalid — no partial wiring is left behind.
//
//	cfg := config.Default("my-service")
//	cfg.EnableMetrics = true
//
//	obs, err := observekit.Setup(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer obs.Shutdown(ctx)
//
//	counter, _ := obs.Metrics.Counter("my-service", "orders.total")
//	counter.Add(ctx, 1)
//
// Mount the scrape and health endpoints on an existing gin engine with
// Mount, or serve them standalone on the configured Prometheus port with
// ListenAndServe.
package observekit
