package config

import (
	"reflect"
	"testing"
)

func validConfig() *Config {
	cfg := Default("test-service")
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	result := Validate(validConfig())

	if !result.Valid() {
		t.Fatalf("expected valid config, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected zero errors, got %v", result.Errors)
	}
}

func TestValidate_EmptyServiceName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		cfg := validConfig()
		cfg.ServiceName = name

		result := Validate(cfg)
		if result.Valid() {
			t.Errorf("ServiceName %q: expected invalid", name)
		}
		if !containsString(result.Errors, "ServiceName não pode ser nulo ou vazio") {
			t.Errorf("ServiceName %q: expected exact error message, got %v", name, result.Errors)
		}
	}
}

func TestValidate_LongServiceNameIsWarningOnly(t *testing.T) {
	cfg := validConfig()
	cfg.ServiceName = "this-service-name-is-way-too-long-to-be-reasonable-at-all"

	result := Validate(cfg)
	if !result.Valid() {
		t.Errorf("long name must not be an error, got %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a long service name")
	}
}

func TestValidate_PrometheusPortBounds(t *testing.T) {
	tests := []struct {
		port      int
		wantValid bool
		wantWarn  bool
	}{
		{1, true, true},
		{80, true, true},
		{1023, true, true},
		{1024, true, false},
		{9464, true, false},
		{65535, true, false},
		{0, false, false},
		{65536, false, false},
		{-1, false, false},
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.PrometheusPort = tt.port

		result := Validate(cfg)
		if result.Valid() != tt.wantValid {
			t.Errorf("port %d: expected valid=%v, errors=%v", tt.port, tt.wantValid, result.Errors)
		}
		if tt.wantWarn && len(result.Warnings) == 0 {
			t.Errorf("port %d: expected privileged-port warning", tt.port)
		}
	}
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := validConfig()
	cfg.EnableTracing = true
	cfg.TempoEndpoint = "invalid-tempo-url"

	result := Validate(cfg)
	if result.Valid() {
		t.Fatal("expected invalid config")
	}
	if !containsString(result.Errors, "TempoEndpoint inválido: invalid-tempo-url") {
		t.Errorf("expected exact error string, got %v", result.Errors)
	}
}

func TestValidate_EmptyURLsAreAlwaysValid(t *testing.T) {
	cfg := validConfig()
	cfg.EnableTracing = true
	cfg.EnableLogging = true
	// All endpoint fields left empty: disabled, never URL-validated.

	result := Validate(cfg)
	if !result.Valid() {
		t.Errorf("empty URLs must never produce errors, got %v", result.Errors)
	}
}

func TestValidate_WellFormedURLs(t *testing.T) {
	cfg := validConfig()
	cfg.OTLPEndpoint = "http://otel-collector:4318"
	cfg.LokiURL = "https://loki.example.com:3100"
	cfg.SeqURL = "http://seq:5341"

	result := Validate(cfg)
	if !result.Valid() {
		t.Errorf("expected valid, got %v", result.Errors)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"Trace", "debug", "INFORMATION", "Warning", "error", "Critical", "fatal"} {
		cfg := validConfig()
		cfg.MinimumLogLevel = level
		if result := Validate(cfg); !result.Valid() {
			t.Errorf("level %q: expected valid, got %v", level, result.Errors)
		}
	}

	cfg := validConfig()
	cfg.MinimumLogLevel = "Verbose"
	result := Validate(cfg)
	if result.Valid() {
		t.Fatal("expected invalid log level to be rejected")
	}
	if !containsString(result.Errors, "MinimumLogLevel inválido: Verbose") {
		t.Errorf("expected level error, got %v", result.Errors)
	}
}

func TestValidate_Labels(t *testing.T) {
	cfg := validConfig()
	cfg.AdditionalLabels = map[string]string{"": "x", "team": "core"}
	cfg.LokiLabels = map[string]string{"env": ""}

	result := Validate(cfg)
	if result.Valid() {
		t.Fatal("expected empty label key to be an error")
	}
	if !containsString(result.Errors, "AdditionalLabels contém chave vazia") {
		t.Errorf("expected empty-key error, got %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected empty-value warning for LokiLabels")
	}
}

func TestValidate_IsPure(t *testing.T) {
	cfg := validConfig()
	cfg.ServiceName = ""
	cfg.PrometheusPort = 70000
	cfg.TempoEndpoint = "not a url"
	cfg.AdditionalLabels = map[string]string{"a": "", "b": "", "": "x"}

	first := Validate(cfg)
	second := Validate(cfg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results for identical input:\n%v\n%v", first, second)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.ServiceName = ""
	cfg.PrometheusPort = 0
	cfg.MinimumLogLevel = "nope"
	cfg.LokiURL = "::bad::"

	result := Validate(cfg)
	if len(result.Errors) < 4 {
		t.Errorf("expected every violation reported, got %v", result.Errors)
	}
}

func TestURLIssue(t *testing.T) {
	if issue := URLIssue("TempoEndpoint", ""); issue != "" {
		t.Errorf("empty value must not be an issue, got %q", issue)
	}
	if issue := URLIssue("TempoEndpoint", "invalid-tempo-url"); issue != "TempoEndpoint inválido: invalid-tempo-url" {
		t.Errorf("unexpected issue string: %q", issue)
	}
	if issue := URLIssue("LokiURL", "http://loki:3100"); issue != "" {
		t.Errorf("well-formed URL must not be an issue, got %q", issue)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
