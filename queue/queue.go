package queue

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/logger"
	"github.com/kbukum/knife/observability"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/util"
	"github.com/kbukum/knife/verb"
)

// instrumentationName prefixes span names and names the meter.
const instrumentationName = "knife"

// Queue is a fluent transformation queue.
type Queue struct {
	id      string
	opts    Options
	state   *engine.State
	history *engine.History
	ctx     context.Context
	log     *logger.Logger
	err     error
}

// New creates an eager queue under the Replace policy.
//
// A single argument must be iterable and is expanded into the queue. Zero
// or several arguments become the queue's elements as given.
func New(values ...any) *Queue {
	return NewWithOptions(Options{}, values...)
}

// NewLazy creates a queue on the lazy backend.
func NewLazy(values ...any) *Queue {
	return NewWithOptions(Options{Backend: buffer.KindLazy}, values...)
}

// NewManual creates a queue under the Manual policy. Results reach the
// incoming values only through Sync or Shift.
func NewManual(values ...any) *Queue {
	return NewWithOptions(Options{Policy: engine.Manual}, values...)
}

// NewAuto creates a queue under the Accumulate policy.
func NewAuto(values ...any) *Queue {
	return NewWithOptions(Options{Policy: engine.Accumulate}, values...)
}

// NewWithOptions creates a queue configured by opts.
func NewWithOptions(opts Options, values ...any) *Queue {
	q := &Queue{
		id:      uuid.NewString(),
		opts:    opts,
		state:   engine.NewState(opts.Backend, opts.Policy),
		history: engine.NewHistory(opts.MaxSnapshots),
	}

	log := opts.Logger
	if log == nil {
		log = logger.Get("knife.queue")
	}
	q.log = log.WithFields(logger.Fields(
		logger.FieldQueueID, q.id,
		logger.FieldBackend, opts.Backend.String(),
		logger.FieldPolicy, opts.Policy.String(),
	))
	q.WithContext(context.Background())

	if len(values) == 1 {
		it, ok := util.Iterate(values[0])
		if !ok {
			q.fail(errors.NotIterable(values[0]))
			return q
		}
		q.state.Load(it)
	} else {
		q.state.Load(pipeline.FromSlice(values))
	}
	q.history.SetOriginal(q.state.Buffer(engine.Source))
	return q
}

// FromConfig creates a queue from configuration. Defaults are applied and
// the configuration is validated first.
func FromConfig(cfg Config, values ...any) (*Queue, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	q := NewWithOptions(opts, values...)
	if q.err != nil {
		return nil, q.err
	}
	return q, nil
}

// ID returns the queue's unique identifier.
func (q *Queue) ID() string { return q.id }

// Backend reports the buffer backend.
func (q *Queue) Backend() buffer.Kind { return q.state.Kind() }

// Policy reports the balancing policy.
func (q *Queue) Policy() engine.Policy { return q.state.Policy() }

// WithContext sets the context verbs run under. Delay verbs stop waiting
// when it is done.
func (q *Queue) WithContext(ctx context.Context) *Queue {
	oc := observability.NewOperationContext(q.id, q.opts.Backend.String(), q.opts.Policy.String(), q.opts.Metrics)
	q.ctx = observability.WithOperationContext(ctx, oc)
	return q
}

// Err reports the latched error, if any.
func (q *Queue) Err() error { return q.err }

func (q *Queue) fail(err error) {
	q.err = err
	q.log.Debug("chain halted", logger.ErrorFields("queue", err))
}

// Run applies v under the current rotation.
func (q *Queue) Run(v engine.Verb) *Queue {
	return q.runWith(q.state.Rotation(), v)
}

// Apply runs the catalog verb registered under name. Unknown names are
// NOT_FOUND.
func (q *Queue) Apply(name string) *Queue {
	if q.err != nil {
		return q
	}
	v, ok := catalog.Get(name)
	if !ok {
		q.fail(errors.NotFound("verb", name))
		return q
	}
	return q.Run(v)
}

var catalog = verb.Catalog()

func (q *Queue) runWith(rotation engine.Rotation, v engine.Verb) *Queue {
	if q.err != nil {
		return q
	}
	if err := engine.Run(q.ctx, q.state, rotation, q.instrument(v)); err != nil {
		q.fail(err)
	}
	return q
}

func (q *Queue) instrument(v engine.Verb) engine.Verb {
	if q.opts.Logging {
		v = engine.WithLogging(v, q.log)
	}
	if q.opts.Metrics != nil {
		v = engine.WithMetrics(v, q.opts.Metrics)
	}
	if q.opts.Tracing {
		v = engine.WithTracing(v, instrumentationName)
	}
	return v
}

// Tap binds fn as the callable for the following verbs and clears any
// bound arguments.
func (q *Queue) Tap(fn any) *Queue {
	if q.err != nil {
		return q
	}
	if err := q.state.Binding().Tap(fn); err != nil {
		q.fail(err)
	}
	return q
}

// Args binds extra positional arguments passed after each element.
func (q *Queue) Args(args ...any) *Queue {
	if q.err == nil {
		q.state.Binding().SetArgs(args, nil)
	}
	return q
}

// ArgsKw binds extra positional and keyword arguments.
func (q *Queue) ArgsKw(kwargs map[string]any, args ...any) *Queue {
	if q.err == nil {
		q.state.Binding().SetArgs(args, kwargs)
	}
	return q
}

// Detap clears the callable and its arguments.
func (q *Queue) Detap() *Queue {
	q.state.Binding().Clear()
	return q
}

// Unwrap is an alias of Detap.
func (q *Queue) Unwrap() *Queue { return q.Detap() }

// KeepResults makes verbs add to the results instead of replacing them
// until the next Value or End.
func (q *Queue) KeepResults() *Queue {
	q.state.SetRotation(engine.Keep)
	return q
}

// Sync replaces the incoming values with the results.
func (q *Queue) Sync() *Queue { return q.runWith(engine.SyncRotation, verb.Identity()) }

// Shift appends the results to the incoming values.
func (q *Queue) Shift() *Queue { return q.runWith(engine.ShiftRotation, verb.Identity()) }

// OutSync replaces the results with the incoming values.
func (q *Queue) OutSync() *Queue { return q.runWith(engine.OutSyncRotation, verb.Identity()) }

// OutShift appends the incoming values to the results.
func (q *Queue) OutShift() *Queue { return q.runWith(engine.OutShiftRotation, verb.Identity()) }

// Reup packs the incoming values into a single tuple element.
func (q *Queue) Reup() *Queue { return q.runWith(engine.ReupRotation, verb.Pack()) }

// Append adds values to the back of the incoming values.
func (q *Queue) Append(values ...any) *Queue {
	if q.err == nil {
		q.source().Extend(pipeline.FromSlice(values))
	}
	return q
}

// AppendLeft adds values to the front one at a time, so they end up
// reversed.
func (q *Queue) AppendLeft(values ...any) *Queue {
	if q.err == nil {
		q.source().ExtendLeft(pipeline.FromSlice(values))
	}
	return q
}

// Extend adds every element of iterable to the back.
func (q *Queue) Extend(iterable any) *Queue {
	if it, ok := q.iterate(iterable); ok {
		q.source().Extend(it)
	}
	return q
}

// ExtendLeft adds every element of iterable to the front, reversed.
func (q *Queue) ExtendLeft(iterable any) *Queue {
	if it, ok := q.iterate(iterable); ok {
		q.source().ExtendLeft(it)
	}
	return q
}

func (q *Queue) iterate(v any) (pipeline.Iterator[any], bool) {
	if q.err != nil {
		return nil, false
	}
	it, ok := util.Iterate(v)
	if !ok {
		q.fail(errors.NotIterable(v))
	}
	return it, ok
}

// Insert places v before index i of the incoming values.
func (q *Queue) Insert(i int, v any) *Queue {
	if q.err == nil {
		q.source().Insert(i, v)
	}
	return q
}

// Remove deletes the first incoming value equal to v.
func (q *Queue) Remove(v any) *Queue {
	if q.err == nil {
		if err := q.source().Remove(v); err != nil {
			q.fail(err)
		}
	}
	return q
}

// Delete removes the incoming value at index i.
func (q *Queue) Delete(i int) *Queue {
	if q.err == nil {
		if err := q.source().Delete(i); err != nil {
			q.fail(err)
		}
	}
	return q
}

func (q *Queue) source() buffer.Buffer { return q.state.Buffer(engine.Source) }

// Snapshot saves a copy of the incoming values.
func (q *Queue) Snapshot() *Queue {
	if q.err == nil {
		q.history.Snapshot(q.source())
	}
	return q
}

// Baseline saves a copy of the incoming values as the Rollback target.
func (q *Queue) Baseline() *Queue {
	if q.err == nil {
		q.history.Baseline(q.source())
	}
	return q
}

// Undo restores the incoming values from the steps-th most recent
// snapshot and discards the newer ones.
func (q *Queue) Undo(steps int) *Queue {
	if q.err != nil {
		return q
	}
	snap, err := q.history.Undo(steps)
	if err != nil {
		q.fail(err)
		return q
	}
	q.state.Restore(snap)
	snap.Clear()
	return q
}

// Rollback restores the incoming values from the baseline, or from the
// values the queue was created with.
func (q *Queue) Rollback() *Queue {
	if q.err != nil {
		return q
	}
	b, err := q.history.Rollback()
	if err != nil {
		q.fail(err)
		return q
	}
	q.state.Restore(b)
	return q
}

// Value returns the results, unwrapping a single one, and clears them
// along with the binding. A latched error is returned and cleared instead.
func (q *Queue) Value() (any, error) {
	out := q.state.Value()
	if err := q.err; err != nil {
		q.err = nil
		return nil, err
	}
	return out, nil
}

// End is Value followed by a full reset of the queue and its history.
func (q *Queue) End() (any, error) {
	out, err := q.Value()
	q.state.Reset()
	q.history.Clear()
	return out, err
}

// Results drains the results one at a time. The sequence is single use.
func (q *Queue) Results() iter.Seq[any] {
	return pipeline.Seq(q.state.Buffer(engine.Result).Drain())
}

// Peek returns the results like Value without clearing them.
func (q *Queue) Peek() any { return q.state.Peek() }

// Balanced reports whether results and incoming values have the same
// length.
func (q *Queue) Balanced() bool { return q.state.Balanced() }

// Len counts the incoming values.
func (q *Queue) Len() int { return q.source().Len() }

// OutCount counts the results.
func (q *Queue) OutCount() int { return q.state.Buffer(engine.Result).Len() }

// Contains reports whether an incoming value equals v.
func (q *Queue) Contains(v any) bool { return q.Index(v) >= 0 }

// Index returns the position of the first incoming value equal to v, or -1.
func (q *Queue) Index(v any) int { return q.source().Index(v) }
