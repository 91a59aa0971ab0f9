// Package domain defines the core entities and interfaces for the GNSS viewer.
//
// This package contains the track point model, the repository interface for
// recorded position history, and the sentinel errors shared across packages.
// All interfaces accept context for cancellation and timeout support.
package domain
