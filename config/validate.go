package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating a Config. Errors block startup;
// warnings are advisory only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the configuration has no errors.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// maxServiceNameLength is the advisory limit for service names; longer
// names still validate but produce a warning.
const maxServiceNameLength = 50

var urlCheck = validator.New()

// URLIssue checks that value is an absolute URL and returns a
// human-readable issue string, or "" when the value is well-formed.
// Empty values are always accepted: an unset endpoint means the
// integration is disabled. The check is purely syntactic — no
// connectivity probing.
func URLIssue(field, value string) string {
	if value == "" {
		return ""
	}
	if err := urlCheck.Var(value, "url"); err != nil {
		return fmt.Sprintf("%s inválido: %s", field, value)
	}
	return ""
}

// Validate checks cfg and returns every error and warning found.
// It is a pure function: no I/O, no mutation, never panics.
func Validate(cfg *Config) Result {
	var result Result

	if strings.TrimSpace(cfg.ServiceName) == "" {
		result.Errors = append(result.Errors, "ServiceName não pode ser nulo ou vazio")
	} else if len(cfg.ServiceName) > maxServiceNameLength {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("ServiceName com mais de %d caracteres: %s", maxServiceNameLength, cfg.ServiceName))
	}

	if cfg.PrometheusPort < 1 || cfg.PrometheusPort > 65535 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("PrometheusPort inválido: %d (deve estar entre 1 e 65535)", cfg.PrometheusPort))
	} else if cfg.PrometheusPort < 1024 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("PrometheusPort %d é uma porta privilegiada (abaixo de 1024)", cfg.PrometheusPort))
	}

	endpoints := []struct {
		field string
		value string
	}{
		{"OTLPEndpoint", cfg.OTLPEndpoint},
		{"TempoEndpoint", cfg.TempoEndpoint},
		{"CollectorEndpoint", cfg.CollectorEndpoint},
		{"LokiURL", cfg.LokiURL},
		{"SeqURL", cfg.SeqURL},
		{"ElasticsearchURL", cfg.ElasticsearchURL},
	}
	for _, ep := range endpoints {
		if issue := URLIssue(ep.field, ep.value); issue != "" {
			result.Errors = append(result.Errors, issue)
		}
	}

	if !ValidLogLevel(cfg.MinimumLogLevel) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("MinimumLogLevel inválido: %s", cfg.MinimumLogLevel))
	}

	validateLabels(&result, "AdditionalLabels", cfg.AdditionalLabels)
	validateLabels(&result, "LokiLabels", cfg.LokiLabels)

	return result
}

// ValidLogLevel reports whether level names a known severity,
// case-insensitively.
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "information", "warning", "error", "critical", "fatal":
		return true
	}
	return false
}

// validateLabels checks one label map. Keys are visited in sorted order
// so repeated validation of the same config yields identical results.
func validateLabels(result *Result, field string, labels map[string]string) {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s contém chave vazia", field))
			continue
		}
		if labels[key] == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: valor vazio para a chave %q", field, key))
		}
	}
}
