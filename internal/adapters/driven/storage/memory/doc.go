// Package memory provides in-memory implementations of the driven
// storage ports. They mirror the file adapters' semantics exactly
// (cap eviction, newest-first listing, degenerate-vector handling)
// and are used by tests and as fallbacks when no data directory is
// available.
package memory
