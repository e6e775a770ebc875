// Package writer provides Writer[W, A], a value paired with an ordered log.
// Bind concatenates logs left to right; Listen and Censor observe and
// rewrite the log without leaving the container.
package writer
