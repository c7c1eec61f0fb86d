package health

import (
	"context"
	"fmt"
	"sync"
)

// Status is the health classification of a check.
type Status string

const (
	// StatusHealthy means the checked pillar is disabled or its
	// configuration passes all syntactic checks.
	StatusHealthy Status = "healthy"
	// StatusDegraded means the pillar is enabled but misconfigured in a
	// recognizable way (named in the result details).
	StatusDegraded Status = "degraded"
	// StatusUnhealthy means the check itself failed unexpectedly.
	StatusUnhealthy Status = "unhealthy"
)

// Result is the outcome of one health check.
type Result struct {
	Name    string            `json:"name"`
	Status  Status            `json:"status"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Check is implemented by components that can report their health.
type Check interface {
	Name() string
	CheckHealth(ctx context.Context) Result
}

// Registry holds an ordered set of health checks.
type Registry struct {
	mu     sync.RWMutex
	checks []Check
}

// NewRegistry creates an empty health check registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a check. Checks run in registration order.
func (r *Registry) Register(c Check) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, c)
}

// Checks returns the registered checks in order.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Check(nil), r.checks...)
}

// CheckAll runs every registered check. A panicking check is reported as
// unhealthy; panics never escape the health subsystem.
func (r *Registry) CheckAll(ctx context.Context) []Result {
	checks := r.Checks()

	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		results = append(results, run(ctx, check))
	}
	return results
}

// Overall aggregates results into a single status: unhealthy beats
// degraded beats healthy.
func Overall(results []Result) Status {
	overall := StatusHealthy
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}

func run(ctx context.Context, check Check) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Name:    check.Name(),
				Status:  StatusUnhealthy,
				Message: fmt.Sprintf("health check panicked: %v", rec),
			}
		}
	}()
	return check.CheckHealth(ctx)
}
