// Package nel provides NonEmptyList[T], a list with at least one element
// guaranteed by construction. It pairs naturally with package validation,
// whose Invalid side is exactly a non-empty error collection.
package nel
