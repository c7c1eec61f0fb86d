// Package health classifies the observability configuration and runtime
// state as healthy, degraded or unhealthy.
//
// Checks are pure functions of configuration (plus, for logging, a live
// status snapshot): degraded means a recognized, nameable misconfiguration
// such as a malformed endpoint URL, unhealthy means an unexpected failure
// while evaluating the check itself. No check ever performs network I/O —
// "healthy" means the configuration looks sane, not that the remote
// collector is reachable.
//
//	registry := health.NewRegistry()
//	registry.Register(health.NewTracingCheck(cfg))
//	results := registry.CheckAll(ctx)
package health
