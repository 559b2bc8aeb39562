// Package pipeline provides composable, pull-based iterators.
//
// Iterators are lazy: no value is produced until Next is called, and each
// operator pulls from its source on demand. They are the currency of the
// lazy buffer backend and of verbs that can hand their output over without
// materialising it.
//
// # Operators
//
//   - Map, FlatMap, Filter: per-value transforms
//   - Concat: join iterators sequentially
//   - Take, Skip, Stride: positional slicing
//   - Chunk: fixed-size groups, optionally padded
//   - Window: overlapping sliding windows
//   - Interleave: fair round-robin across iterators
//   - Reverse: back-to-front (drains its source first)
//
// # Usage
//
//	it := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := pipeline.Filter(it, func(n int) bool { return n%2 == 0 })
//	doubled := pipeline.Map(evens, func(n int) int { return n * 2 })
//	got := pipeline.Collect(doubled) // [4 8]
package pipeline
