// Package monad holds the helpers shared by every container package:
// nil detection for interface payloads, joined-error flattening and the
// empty-sequence sentinel used by first-element queries.
//
// The containers themselves live in the subpackages:
// - result: Ok/Err with fail-fast traversal
// - option: Some/None
// - either: Left/Right
// - validation: Valid/Invalid with error accumulation
// - remote: NotAsked/Loading/Success/Failure with priority merge
// - try: panic and error capture into result
// - writer, reader: environment and log threading
// - nel: non-empty lists
// - pipe: channel-lifted concurrent pipelines over result
// - chain: fluent synchronous chaining over result
package monad
