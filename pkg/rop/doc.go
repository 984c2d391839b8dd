// Package rop holds the outcome types used across the lessons: Result[T]
// for operations that may fail with an error and Option[T] for values that
// may be absent.
//
// Subpackages build on them:
// - solo: single-value combinators (Switch, Map, Try, Finally, ...)
// - chain: a fluent wrapper for multi-step fallible work
package rop
