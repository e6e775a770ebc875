// Package try captures panics and returned errors of a computation into a
// result.Result, so callers can stay on the branch-on-variant track instead
// of mixing recover with error handling.
package try
