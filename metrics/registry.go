package metrics

import (
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/metric"
)

// DefaultVersion is used when GetOrCreate is called without a version.
const DefaultVersion = "1.0.0"

// ErrEmptyName is returned when a meter is requested with an empty or
// whitespace-only name.
var ErrEmptyName = errors.New("meter name must not be empty")

// meterKey identifies one cache entry. Name and version together form
// the identity: the same name under two versions yields two meters.
type meterKey struct {
	name    string
	version string
}

// Registry caches named meters so that repeated and concurrent requests
// for the same (name, version) pair observe the same meter instance.
// Construct one per provider; there is no package-level global state.
type Registry struct {
	provider metric.MeterProvider

	mu     sync.RWMutex
	meters map[meterKey]metric.Meter
}

// NewRegistry creates a meter registry backed by the given provider.
func NewRegistry(provider metric.MeterProvider) *Registry {
	return &Registry{
		provider: provider,
		meters:   make(map[meterKey]metric.Meter),
	}
}

// GetOrCreate returns the meter for (name, version), creating it on first
// use. The version defaults to DefaultVersion when omitted. The fast path
// takes only a read lock; on a miss the write lock is taken and the cache
// rechecked, so concurrent callers racing on the same key still end up
// with a single surviving meter.
func (r *Registry) GetOrCreate(name string, version ...string) (metric.Meter, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	key := meterKey{name: name, version: DefaultVersion}
	if len(version) > 0 && version[0] != "" {
		key.version = version[0]
	}

	r.mu.RLock()
	meter, ok := r.meters[key]
	r.mu.RUnlock()
	if ok {
		return meter, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if meter, ok := r.meters[key]; ok {
		return meter, nil
	}
	meter = r.provider.Meter(key.name, metric.WithInstrumentationVersion(key.version))
	r.meters[key] = meter
	return meter, nil
}

// Len returns the number of cached meters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meters)
}

// Reset empties the cache. Safe to call repeatedly; a subsequent
// GetOrCreate with a previously used key creates a fresh meter.
// Instruments already created keep working — resetting the cache does
// not shut down the provider.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meters = make(map[meterKey]metric.Meter)
}

// Counter creates an Int64Counter on the named service meter.
func (r *Registry) Counter(service, name string, opts ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	meter, err := r.GetOrCreate(service)
	if err != nil {
		return nil, err
	}
	return meter.Int64Counter(name, opts...)
}

// Histogram creates a Float64Histogram on the named service meter.
func (r *Registry) Histogram(service, name string, opts ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	meter, err := r.GetOrCreate(service)
	if err != nil {
		return nil, err
	}
	return meter.Float64Histogram(name, opts...)
}

// UpDownCounter creates an Int64UpDownCounter on the named service meter.
func (r *Registry) UpDownCounter(service, name string, opts ...metric.Int64UpDownCounterOption) (metric.Int64UpDownCounter, error) {
	meter, err := r.GetOrCreate(service)
	if err != nil {
		return nil, err
	}
	return meter.Int64UpDownCounter(name, opts...)
}

// ObservableGauge creates a Float64ObservableGauge on the named service
// meter. Register the callback with metric.WithFloat64Callback.
func (r *Registry) ObservableGauge(service, name string, opts ...metric.Float64ObservableGaugeOption) (metric.Float64ObservableGauge, error) {
	meter, err := r.GetOrCreate(service)
	if err != nil {
		return nil, err
	}
	return meter.Float64ObservableGauge(name, opts...)
}
