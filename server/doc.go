// Package server provides the operator-facing HTTP handlers: the
// Prometheus scrape endpoint and the health endpoints. Both are thin
// mounts onto gin routing — exposition format and HTTP serving belong to
// the exporter and the host framework.
package server
