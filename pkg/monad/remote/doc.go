// Package remote provides RemoteData[T], a four-state machine for fetched
// values: NotAsked, Loading, Success and Failure.
//
// Sequence and Traverse merge many fetches into one by priority: the
// aggregate is Success only when every element is, and otherwise takes the
// highest-priority non-Success state, Failure > Loading > NotAsked, with
// the first Failure's error. FirstSuccess and Partition query a slice
// without merging.
package remote
