// Package storage provides the BoltDB-backed position history repository.
//
// Track points are persisted with BoltHold keyed by their timestamp. The
// repository enforces the configured history limit at write time by pruning
// the oldest points. All operations support context cancellation and wrap
// errors with their operation.
package storage
