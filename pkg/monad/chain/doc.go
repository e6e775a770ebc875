// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result values with a context.
//
// Common usage:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Ensure: transform or validate the value
// - Tap: trigger side effects on success only
// - Finally: reduce to a concrete value via handlers
//
// For concurrent fan-out over channels, see package pipe.
package chain
