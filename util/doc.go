// Package util implements the element protocol shared by the knife engine.
//
// Queue elements are untyped (any). This package decides what counts as an
// iterable and how to expand it, what is truthy, when two elements are
// equal, how they order and how they hash into a set.
//
// # Iterables
//
// Iterate recognises []any, every other slice or array, strings (one-rune
// strings), maps (keys, sorted when orderable), receive-able channels,
// iter.Seq[any] and pipeline.Iterator[any].
//
// # Numbers
//
// Numeric helpers treat every integer and float kind as a number. Integer
// arithmetic stays integral; anything involving a float becomes float64.
package util
