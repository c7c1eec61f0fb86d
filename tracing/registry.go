package tracing

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// DefaultVersion is used when GetOrCreate is called without a version.
const DefaultVersion = "1.0.0"

// ErrEmptyName is returned when a tracer is requested with an empty or
// whitespace-only name.
var ErrEmptyName = errors.New("tracer name must not be empty")

type tracerKey struct {
	name    string
	version string
}

// Registry caches named tracers so that repeated and concurrent requests
// for the same (name, version) pair observe the same tracer instance.
type Registry struct {
	provider trace.TracerProvider

	mu      sync.RWMutex
	tracers map[tracerKey]trace.Tracer
}

// NewRegistry creates a tracer registry backed by the given provider.
func NewRegistry(provider trace.TracerProvider) *Registry {
	return &Registry{
		provider: provider,
		tracers:  make(map[tracerKey]trace.Tracer),
	}
}

// GetOrCreate returns the tracer for (name, version), creating it on
// first use. The version defaults to DefaultVersion when omitted.
// Read-lock fast path, write-lock recheck on miss: concurrent callers
// racing on the same key converge on one surviving tracer.
func (r *Registry) GetOrCreate(name string, version ...string) (trace.Tracer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	key := tracerKey{name: name, version: DefaultVersion}
	if len(version) > 0 && version[0] != "" {
		key.version = version[0]
	}

	r.mu.RLock()
	tracer, ok := r.tracers[key]
	r.mu.RUnlock()
	if ok {
		return tracer, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tracer, ok := r.tracers[key]; ok {
		return tracer, nil
	}
	tracer = r.provider.Tracer(key.name, trace.WithInstrumentationVersion(key.version))
	r.tracers[key] = tracer
	return tracer, nil
}

// Len returns the number of cached tracers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tracers)
}

// Reset empties the cache. A subsequent GetOrCreate with a previously
// used key creates a fresh tracer.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracers = make(map[tracerKey]trace.Tracer)
}

// StartSpan resolves the named tracer and starts a span on it. Span kind
// and parent links are passed through opts. The returned span is
// non-recording when sampling declined the trace; callers should treat
// that as a no-op and still call End.
func (r *Registry) StartSpan(ctx context.Context, service, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span, error) {
	tracer, err := r.GetOrCreate(service)
	if err != nil {
		return ctx, nil, err
	}
	ctx, span := tracer.Start(ctx, spanName, opts...)
	return ctx, span, nil
}
