package config

import (
	"fmt"
	"net/url"
	"strings"
)

// SplitEndpoint normalizes an exporter endpoint into the host:port form
// the OTLP HTTP exporters expect, and reports whether the connection
// should skip TLS. Accepts either an absolute URL ("http://otel:4318")
// or a bare host:port ("otel:4318", treated as insecure).
func SplitEndpoint(raw string) (host string, insecure bool, err error) {
	if raw == "" {
		return "", false, fmt.Errorf("endpoint is empty")
	}

	if !strings.Contains(raw, "://") {
		return raw, true, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("parsing endpoint %s: %w", raw, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("endpoint %s has no host", raw)
	}
	return u.Host, u.Scheme != "https", nil
}
