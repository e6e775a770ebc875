// Package validation provides Validation[T, E], a container that accumulates
// errors across independent checks instead of stopping at the first one.
//
// Invalid carries a non-empty, insertion-ordered error collection. Sequence
// and Traverse walk their whole input and flatten every element's errors
// into one collection; Combine2/Combine3 merge independent checks the same
// way. Bind stays fail-fast, which is what a dependent step needs.
//
// Cross over to package result with ToResult/FromResult when a single error
// is enough.
package validation
