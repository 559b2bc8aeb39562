// Package verb is the transformation catalog. Every constructor returns an
// engine.Verb that reads the session's Staging view and writes Pending;
// none of them keeps state between invocations.
//
// Verbs that call the tapped callable evaluate eagerly so a callable error
// aborts the session before anything is committed. Purely structural verbs
// hand lazy pipelines to ReplaceManyLazy and stay deferred on the lazy
// backend.
//
// Families: mapping (Map, Each, Invoke, delays), filter (Filter, Partition,
// Pick, Pluck, Members), cmp (All, Any, Unique, set algebra), math (Sum,
// Median, Mode, Frequency), order (Sort, Group, Grouper, random draws),
// reduce (Reduce, Flatten, Smash, Merge, RoundRobin, Zip), repeat
// (Repeat, Product, Combinations, Permutations, Span) and slice (First,
// Last, Nth, Slice).
package verb
