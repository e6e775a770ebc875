// Package option provides Option[T], a container holding a value or
// nothing, with combinators and fail-fast traversal.
//
// Common usage:
// - Some/None/Of/FromPtr: construct options
// - Map/Bind/Filter/Tap: compose while a value is present
// - Sequence/Traverse: fold a slice of options fail-fast
// - Partition/CollectSome/FirstSome: split or query a slice
// - ToResult/OfResult: cross over to package result
package option
