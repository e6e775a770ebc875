// Package result provides Result[T], a container holding either a value
// or an error, with combinators for composing fallible steps.
//
// Common usage:
// - Ok/Err/Of: construct results
// - Map/Bind/Filter/Tap: compose on the success track
// - Match/Fold: eliminate into handlers or a single value
// - Sequence/Traverse: fold a slice of results fail-fast
// - Partition/CollectOk/CollectErr/FirstOk: split or query a slice
//
// For error accumulation across independent checks, see package validation.
// For channel-lifted concurrent pipelines over results, see package pipe.
package result
