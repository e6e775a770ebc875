// Package reader provides Reader[E, A], a computation over a read-only
// environment, and AsyncReader[E, A], its context-aware variant for
// blocking, fallible steps with cooperative cancellation.
package reader
