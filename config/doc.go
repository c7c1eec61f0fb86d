// Package config defines the observability configuration surface and its
// validation rules.
//
// A Config is populated once at startup — from a YAML file and environment
// variables via Load, or in code — and treated as read-only afterwards.
// Validate checks it without side effects and reports fatal errors and
// advisory warnings separately:
//
//	cfg := config.Default("my-service")
//	cfg.EnableTracing = true
//	cfg.TempoEndpoint = "http://tempo:3200"
//
//	result := config.Validate(cfg)
//	if !result.Valid() {
//	    log.Fatal(strings.Join(result.Errors, "; "))
//	}
package config
