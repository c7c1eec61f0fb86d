package health

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/observekit/config"
	"github.com/kbukum/observekit/logging"
)

// NotConfigured is reported for endpoints that are not set.
const NotConfigured = "Não configurado"

// ConfigCheck reports the overall observability configuration: which
// pillars are enabled, where each endpoint points, and any syntactic
// problems found.
type ConfigCheck struct {
	cfg *config.Config
}

// NewConfigCheck creates the overall configuration check.
func NewConfigCheck(cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{cfg: cfg}
}

// Name implements Check.
func (c *ConfigCheck) Name() string { return "observability" }

// CheckHealth implements Check.
func (c *ConfigCheck) CheckHealth(ctx context.Context) Result {
	if c.cfg == nil {
		return Result{Name: c.Name(), Status: StatusUnhealthy, Message: "configuration not available"}
	}

	details := map[string]string{
		"service":            c.cfg.ServiceName,
		"metrics":            enabledString(c.cfg.EnableMetrics),
		"tracing":            enabledString(c.cfg.EnableTracing),
		"logging":            enabledString(c.cfg.EnableLogging),
		"prometheus_port":    strconv.Itoa(c.cfg.PrometheusPort),
		"tracing_endpoint":   orNotConfigured(c.cfg.TracingEndpoint()),
		"collector_endpoint": orNotConfigured(c.cfg.CollectorEndpoint),
		"loki_url":           orNotConfigured(c.cfg.LokiURL),
		"seq_url":            orNotConfigured(c.cfg.SeqURL),
		"elasticsearch_url":  orNotConfigured(c.cfg.ElasticsearchURL),
	}

	var issues []string
	if c.cfg.EnableTracing {
		issues = append(issues, tracingIssues(c.cfg)...)
	}
	if c.cfg.EnableMetrics {
		if c.cfg.PrometheusPort < 1 || c.cfg.PrometheusPort > 65535 {
			issues = append(issues,
				fmt.Sprintf("PrometheusPort inválido: %d (deve estar entre 1 e 65535)", c.cfg.PrometheusPort))
		}
		// tracingIssues already covers CollectorEndpoint when tracing is on.
		if !c.cfg.EnableTracing {
			if issue := config.URLIssue("CollectorEndpoint", c.cfg.CollectorEndpoint); issue != "" {
				issues = append(issues, issue)
			}
		}
	}
	if c.cfg.EnableLogging {
		issues = append(issues, loggingIssues(c.cfg)...)
	}

	if len(issues) > 0 {
		details["issues"] = strings.Join(issues, "; ")
		return Result{
			Name:    c.Name(),
			Status:  StatusDegraded,
			Message: fmt.Sprintf("%d configuration issue(s)", len(issues)),
			Details: details,
		}
	}

	return Result{Name: c.Name(), Status: StatusHealthy, Details: details}
}

// TracingCheck verifies the tracing pillar configuration.
type TracingCheck struct {
	cfg *config.Config
}

// NewTracingCheck creates the tracing configuration check.
func NewTracingCheck(cfg *config.Config) *TracingCheck {
	return &TracingCheck{cfg: cfg}
}

// Name implements Check.
func (c *TracingCheck) Name() string { return "tracing" }

// CheckHealth implements Check.
func (c *TracingCheck) CheckHealth(ctx context.Context) Result {
	if c.cfg == nil {
		return Result{Name: c.Name(), Status: StatusUnhealthy, Message: "configuration not available"}
	}

	if !c.cfg.EnableTracing {
		return Result{Name: c.Name(), Status: StatusHealthy, Message: "tracing disabled"}
	}

	details := map[string]string{
		"otlp_endpoint":  orNotConfigured(c.cfg.OTLPEndpoint),
		"tempo_endpoint": orNotConfigured(c.cfg.TempoEndpoint),
	}

	issues := tracingIssues(c.cfg)
	if len(issues) > 0 {
		details["issues"] = strings.Join(issues, "; ")
		return Result{
			Name:    c.Name(),
			Status:  StatusDegraded,
			Message: issues[0],
			Details: details,
		}
	}

	return Result{Name: c.Name(), Status: StatusHealthy, Details: details}
}

// LoggingCheck reads the logging pipeline status snapshot.
type LoggingCheck struct {
	cfg *config.Config
	svc *logging.Service
}

// NewLoggingCheck creates the logging pipeline check. The service may be
// nil when the logging pillar is disabled.
func NewLoggingCheck(cfg *config.Config, svc *logging.Service) *LoggingCheck {
	return &LoggingCheck{cfg: cfg, svc: svc}
}

// Name implements Check.
func (c *LoggingCheck) Name() string { return "logging" }

// CheckHealth implements Check.
func (c *LoggingCheck) CheckHealth(ctx context.Context) Result {
	if c.cfg == nil {
		return Result{Name: c.Name(), Status: StatusUnhealthy, Message: "configuration not available"}
	}

	if !c.cfg.EnableLogging {
		return Result{Name: c.Name(), Status: StatusHealthy, Message: "logging disabled"}
	}

	if c.svc == nil {
		return Result{Name: c.Name(), Status: StatusUnhealthy, Message: "logging service not initialized"}
	}

	status := c.svc.Status()
	details := map[string]string{
		"level":        status.Level,
		"active_sinks": strconv.Itoa(status.ActiveSinks()),
	}
	for _, sink := range status.Sinks {
		details["sink_"+sink.Name] = sinkState(sink)
	}

	issues := status.Issues()
	if status.ActiveSinks() == 0 {
		issues = append(issues, "nenhum sink de log ativo")
	}
	if len(issues) > 0 {
		details["issues"] = strings.Join(issues, "; ")
		return Result{
			Name:    c.Name(),
			Status:  StatusDegraded,
			Message: issues[0],
			Details: details,
		}
	}

	return Result{Name: c.Name(), Status: StatusHealthy, Details: details}
}

// tracingIssues returns the syntactic problems with the tracing
// endpoints, using the same messages as the configuration validator.
func tracingIssues(cfg *config.Config) []string {
	var issues []string
	for _, ep := range []struct{ field, value string }{
		{"OTLPEndpoint", cfg.OTLPEndpoint},
		{"TempoEndpoint", cfg.TempoEndpoint},
		{"CollectorEndpoint", cfg.CollectorEndpoint},
	} {
		if issue := config.URLIssue(ep.field, ep.value); issue != "" {
			issues = append(issues, issue)
		}
	}
	if cfg.TracingEndpoint() == "" {
		issues = append(issues, "nenhum endpoint de tracing configurado")
	}
	return issues
}

// loggingIssues returns the syntactic problems with the external log
// destinations.
func loggingIssues(cfg *config.Config) []string {
	var issues []string
	for _, ep := range []struct{ field, value string }{
		{"LokiURL", cfg.LokiURL},
		{"SeqURL", cfg.SeqURL},
		{"ElasticsearchURL", cfg.ElasticsearchURL},
	} {
		if issue := config.URLIssue(ep.field, ep.value); issue != "" {
			issues = append(issues, issue)
		}
	}
	return issues
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func orNotConfigured(value string) string {
	if value == "" {
		return NotConfigured
	}
	return value
}

func sinkState(sink logging.SinkStatus) string {
	if sink.Active {
		return "active"
	}
	if sink.Issue != "" {
		return sink.Issue
	}
	return "inactive"
}
