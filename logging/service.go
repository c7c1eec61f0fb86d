package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kbukum/observekit/config"
)

// SinkStatus describes one configured log destination. Active means the
// sink is either written directly (console, file) or validly declared
// for external delivery; a non-empty Issue always implies inactive.
type SinkStatus struct {
	Name   string `json:"name"`
	Target string `json:"target,omitempty"`
	Active bool   `json:"active"`
	Issue  string `json:"issue,omitempty"`
}

// Status is a point-in-time snapshot of the logging pipeline, consumed
// by the logging health check.
type Status struct {
	Enabled bool         `json:"enabled"`
	Level   string       `json:"level"`
	Sinks   []SinkStatus `json:"sinks"`
}

// ActiveSinks returns the number of active sinks.
func (s Status) ActiveSinks() int {
	count := 0
	for _, sink := range s.Sinks {
		if sink.Active {
			count++
		}
	}
	return count
}

// Issues returns the issue strings of every inactive sink.
func (s Status) Issues() []string {
	var issues []string
	for _, sink := range s.Sinks {
		if sink.Issue != "" {
			issues = append(issues, sink.Issue)
		}
	}
	return issues
}

// Service owns the zerolog pipeline for a service.
type Service struct {
	logger zerolog.Logger

	mu     sync.Mutex
	file   *os.File
	status Status
}

// New builds the logging pipeline from cfg. Sink problems (unwritable
// file path, malformed external URL) do not fail construction — the sink
// is recorded as inactive with an issue and surfaces through Status and
// the logging health check.
func New(cfg *config.Config) (*Service, error) {
	svc := &Service{
		status: Status{
			Enabled: cfg.EnableLogging,
			Level:   cfg.MinimumLogLevel,
		},
	}

	var writers []io.Writer

	if cfg.ConsoleSink {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
		svc.status.Sinks = append(svc.status.Sinks, SinkStatus{Name: "console", Active: true})
	}

	if cfg.FileSink {
		svc.status.Sinks = append(svc.status.Sinks, svc.openFileSink(cfg.FilePath, &writers))
	}

	svc.status.Sinks = append(svc.status.Sinks,
		externalSink("loki", "LokiURL", cfg.LokiURL),
		externalSink("seq", "SeqURL", cfg.SeqURL),
		externalSink("elasticsearch", "ElasticsearchURL", cfg.ElasticsearchURL),
	)
	svc.status.Sinks = compact(svc.status.Sinks)

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(Level(cfg.MinimumLogLevel)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	for k, v := range cfg.LokiLabels {
		logger = logger.With().Str(k, v).Logger()
	}

	svc.logger = logger
	return svc, nil
}

// Logger returns the configured zerolog logger.
func (s *Service) Logger() zerolog.Logger {
	return s.logger
}

// WithComponent returns the logger tagged with a component name.
func (s *Service) WithComponent(name string) zerolog.Logger {
	return s.logger.With().Str("component", name).Logger()
}

// Status returns a copy of the current pipeline status.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.status
	snapshot.Sinks = append([]SinkStatus(nil), s.status.Sinks...)
	return snapshot
}

// Close releases the file sink, if any. Safe to call repeatedly.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Level maps a configured severity name to a zerolog level. Unknown
// names fall back to info; configuration validation rejects them before
// the pipeline is built.
func Level(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "information":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "critical", "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// openFileSink opens the log file for append and registers the writer.
func (s *Service) openFileSink(path string, writers *[]io.Writer) SinkStatus {
	if path == "" {
		return SinkStatus{Name: "file", Issue: "file sink enabled without file_path"}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return SinkStatus{
			Name:   "file",
			Target: path,
			Issue:  fmt.Sprintf("opening log file: %v", err),
		}
	}

	s.file = file
	*writers = append(*writers, file)
	return SinkStatus{Name: "file", Target: path, Active: true}
}

// externalSink records a declared external destination. The URL is
// checked syntactically only; delivery belongs to the log shipper.
func externalSink(name, field, url string) SinkStatus {
	if url == "" {
		return SinkStatus{}
	}
	issue := config.URLIssue(field, url)
	return SinkStatus{
		Name:   name,
		Target: url,
		Active: issue == "",
		Issue:  issue,
	}
}

// compact drops empty placeholder entries from unconfigured sinks.
func compact(sinks []SinkStatus) []SinkStatus {
	kept := sinks[:0]
	for _, sink := range sinks {
		if sink.Name != "" {
			kept = append(kept, sink)
		}
	}
	return kept
}
