// Package either provides Either[L, R], a container holding exactly one of
// two values. Combinators are right-biased: Map/Bind act on Right, MapLeft
// acts on Left, Fold eliminates both sides.
package either
