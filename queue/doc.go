// Package queue is the fluent front end of knife.
//
// A Queue holds incoming values, a bound callable and the output of the
// last verb. Every verb returns the same Queue so calls chain:
//
//	v, err := queue.New(1, 2, 3, 4, 5, 6).Tap(isOdd).Partition().Value()
//	// v == []any{[]any{1, 3, 5}, []any{2, 4, 6}}
//
// The first failing call latches its error. Later calls are skipped and
// Value or End report it:
//
//	_, err := queue.New().First().Value() // EXHAUSTED
//
// Queues are built from Options or from a Config loaded with the config
// package:
//
//	cfg, err := queue.LoadConfig("knife")
//	q, err := queue.FromConfig(cfg, values...)
//
// A Queue is not safe for concurrent use.
package queue
