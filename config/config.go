package config

import "time"

// Log level names accepted by MinimumLogLevel, matched case-insensitively.
const (
	LevelTrace       = "Trace"
	LevelDebug       = "Debug"
	LevelInformation = "Information"
	LevelWarning     = "Warning"
	LevelError       = "Error"
	LevelCritical    = "Critical"
	LevelFatal       = "Fatal"
)

// Config holds the full observability configuration for a service.
// Endpoint fields left empty mean the corresponding integration is
// disabled; they are never validated as URLs.
type Config struct {
	// ServiceName identifies the service in telemetry and log output.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is attached to the telemetry resource. Defaults to "1.0.0".
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (development, staging, production).
	Environment string `yaml:"environment" mapstructure:"environment"`

	// EnableMetrics, EnableTracing and EnableLogging switch each pillar
	// independently. Any combination is valid, including all off.
	EnableMetrics bool `yaml:"enable_metrics" mapstructure:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing" mapstructure:"enable_tracing"`
	EnableLogging bool `yaml:"enable_logging" mapstructure:"enable_logging"`

	// PrometheusPort is the port for the metrics scrape endpoint.
	PrometheusPort int `yaml:"prometheus_port" mapstructure:"prometheus_port"`

	// OTLPEndpoint is the OTLP HTTP endpoint for trace export.
	OTLPEndpoint string `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	// TempoEndpoint is used for trace export when OTLPEndpoint is unset.
	TempoEndpoint string `yaml:"tempo_endpoint" mapstructure:"tempo_endpoint"`
	// CollectorEndpoint enables OTLP metric push alongside Prometheus scraping.
	CollectorEndpoint string `yaml:"collector_endpoint" mapstructure:"collector_endpoint"`
	// LokiURL, SeqURL and ElasticsearchURL declare external log destinations.
	// Delivery is handled by a log shipper; they are tracked for status only.
	LokiURL          string `yaml:"loki_url" mapstructure:"loki_url"`
	SeqURL           string `yaml:"seq_url" mapstructure:"seq_url"`
	ElasticsearchURL string `yaml:"elasticsearch_url" mapstructure:"elasticsearch_url"`

	// MinimumLogLevel is one of Trace, Debug, Information, Warning, Error,
	// Critical or Fatal (case-insensitive).
	MinimumLogLevel string `yaml:"minimum_log_level" mapstructure:"minimum_log_level"`

	// ConsoleSink and FileSink select the local log sinks.
	ConsoleSink bool   `yaml:"console_sink" mapstructure:"console_sink"`
	FileSink    bool   `yaml:"file_sink" mapstructure:"file_sink"`
	FilePath    string `yaml:"file_path" mapstructure:"file_path"`

	// AdditionalLabels are attached to the telemetry resource.
	AdditionalLabels map[string]string `yaml:"additional_labels" mapstructure:"additional_labels"`
	// LokiLabels are stream labels for the Loki destination.
	LokiLabels map[string]string `yaml:"loki_labels" mapstructure:"loki_labels"`

	// ExportInterval is the OTLP metric push interval.
	ExportInterval time.Duration `yaml:"export_interval" mapstructure:"export_interval"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// Default returns a Config with development defaults for the given service.
func Default(serviceName string) *Config {
	cfg := &Config{
		ServiceName: serviceName,
		ConsoleSink: true,
		SampleRate:  1.0,
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
// Boolean switches are left as-is.
func (c *Config) ApplyDefaults() {
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.PrometheusPort == 0 {
		c.PrometheusPort = 9464
	}
	if c.MinimumLogLevel == "" {
		c.MinimumLogLevel = LevelInformation
	}
	if c.ExportInterval == 0 {
		c.ExportInterval = 15 * time.Second
	}
}

// TracingEndpoint returns the endpoint used for trace export:
// OTLPEndpoint when set, otherwise TempoEndpoint, otherwise CollectorEndpoint.
func (c *Config) TracingEndpoint() string {
	switch {
	case c.OTLPEndpoint != "":
		return c.OTLPEndpoint
	case c.TempoEndpoint != "":
		return c.TempoEndpoint
	default:
		return c.CollectorEndpoint
	}
}
