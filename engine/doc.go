// Package engine runs verbs over a four-buffer state.
//
// A State owns Source, Staging, Pending and Result buffers of one backend,
// the operation binding (tapped callable plus bound arguments) and a
// balancing policy. Every verb runs inside a Session:
//
//	err := engine.Run(ctx, state, state.Rotation(), v)
//
// Run forks the rotation's From role into Staging, lets the verb write
// Pending, commits Pending into the To role when the verb succeeds and
// then applies the policy: Replace copies Result over Source, Accumulate
// appends it, Manual leaves Source alone until an explicit sync.
//
// Value and End extract Result, unwrapping a single element. History keeps
// bounded Source snapshots for Undo and Rollback. WithTracing, WithMetrics
// and WithLogging wrap any Verb with instrumentation.
package engine
