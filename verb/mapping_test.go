package verb

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/testutil"
)

type counter struct{ n int }

func (c *counter) Incr(by int) { c.n += by }

func (c *counter) Value() int { return c.n }

func (c *counter) Scaled(by float64, opts map[string]any) (any, error) {
	if opts["fail"] == true {
		return nil, stderrors.New("scale failed")
	}
	return float64(c.n) * by, nil
}

func (c *counter) Maybe() *counter { return nil }

func (c *counter) Shifted(b uint8) int { return c.n + int(b) }

func TestMapping(t *testing.T) {
	add := func(args []any, kw map[string]any) (any, error) {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		if k, ok := kw["plus"]; ok {
			total += k.(int)
		}
		return total, nil
	}
	runCases(t, []verbCase{
		{name: "map", verb: Map(), tap: func(x any) any { return x.(int) * 10 }, values: list(1, 2), want: list(10, 20)},
		{name: "map no callable", verb: Map(), values: list(1), code: errors.ErrCodeNoCallable},
		{name: "starmap", verb: StarMap(), tap: func(x, y any) any { return x.(int) - y.(int) }, values: list(list(5, 1), list(3, 3)), want: list(4, 0)},
		{name: "starmap arity", verb: StarMap(), tap: func(x, y any) any { return x }, values: list(list(1)), code: errors.ErrCodeInvalidInput},
		{name: "starmap not iterable", verb: StarMap(), tap: func(x, y any) any { return x }, values: list(1), code: errors.ErrCodeNotIterable},
		{name: "each", verb: Each(), tap: add, values: list(list(list(1, 2), map[string]any{"plus": 10}), list(list(3), nil)), want: list(13, 3)},
		{name: "each bad element", verb: Each(), tap: add, values: list(1), code: errors.ErrCodeInvalidInput},
		{name: "each no callable", verb: Each(), values: list(list(list(1), nil)), code: errors.ErrCodeNoCallable},
		{name: "times", verb: Times(3), tap: func(xs ...any) (any, error) { return len(xs), nil }, values: list("a", "b"), want: list(2, 2, 2)},
		{name: "times negative", verb: Times(-1), tap: func(xs ...any) (any, error) { return nil, nil }, code: errors.ErrCodeInvalidInput},
	})
}

func TestMapping_CallableErrorAborts(t *testing.T) {
	boom := stderrors.New("boom")
	testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
		got, err := apply(t, kind, Map(), func(x any) (any, error) {
			if x == 2 {
				return nil, boom
			}
			return x, nil
		}, 1, 2, 3)
		if !stderrors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		testutil.Equal(t, got, []any{})
	})
}

func TestInvoke(t *testing.T) {
	testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
		a, b := &counter{n: 1}, &counter{n: 2}

		s := engine.NewState(kind, engine.Replace)
		s.Load(pipeline.FromSlice([]any{a, b}))
		s.Binding().SetArgs([]any{5}, nil)
		if err := engine.Run(context.Background(), s, engine.Neutral, Invoke("Incr")); err != nil {
			t.Fatal(err)
		}
		testutil.Equal(t, s.Buffer(engine.Result).Values(), []any{a, b})
		if a.n != 6 || b.n != 7 {
			t.Errorf("expected in-place increments, got %d and %d", a.n, b.n)
		}

		s.Binding().SetArgs(nil, nil)
		if err := engine.Run(context.Background(), s, engine.Neutral, Invoke("Value")); err != nil {
			t.Fatal(err)
		}
		testutil.Equal(t, s.Buffer(engine.Result).Values(), []any{6, 7})
	})
}

func TestInvoke_Resolution(t *testing.T) {
	c := &counter{n: 2}
	tests := []struct {
		name   string
		method string
		args   []any
		kwargs map[string]any
		want   any
		code   errors.ErrorCode
	}{
		{"numeric conversion", "Scaled", []any{2}, map[string]any{"x": 1}, 4.0, ""},
		{"nil first result keeps element", "Maybe", nil, nil, c, ""},
		{"method error", "Scaled", []any{1.0}, map[string]any{"fail": true}, nil, "callable"},
		{"missing method", "Nope", nil, nil, nil, errors.ErrCodeNotFound},
		{"wrong arity", "Incr", nil, nil, nil, errors.ErrCodeInvalidInput},
		{"wrong type", "Incr", []any{"x"}, nil, nil, errors.ErrCodeInvalidInput},
		{"integral float to int", "Shifted", []any{3.0}, nil, 5, ""},
		{"fractional float to int", "Incr", []any{2.9}, nil, nil, errors.ErrCodeInvalidInput},
		{"int fits uint8", "Shifted", []any{255}, nil, 257, ""},
		{"int overflows uint8", "Shifted", []any{300}, nil, nil, errors.ErrCodeInvalidInput},
		{"negative int to uint8", "Shifted", []any{-1}, nil, nil, errors.ErrCodeInvalidInput},
		{"unexpected kwargs", "Incr", []any{1}, map[string]any{"k": 1}, nil, errors.ErrCodeInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := callMethod(c, tc.method, tc.args, tc.kwargs)
			switch tc.code {
			case "":
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				testutil.Equal(t, got, tc.want)
			case "callable":
				if err == nil || !strings.Contains(err.Error(), "scale failed") {
					t.Errorf("expected method error, got %v", err)
				}
			default:
				testutil.T(t).ErrorCode(err, tc.code)
			}
		})
	}
}

func TestDelayVerbs(t *testing.T) {
	const d = 5 * time.Millisecond
	testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
		start := time.Now()
		got, err := apply(t, kind, DelayMap(d), func(x any) any { return x }, 1, 2, 3)
		if err != nil {
			t.Fatal(err)
		}
		testutil.Equal(t, got, []any{1, 2, 3})
		if elapsed := time.Since(start); elapsed < 3*d {
			t.Errorf("expected at least %v of delay, took %v", 3*d, elapsed)
		}

		got, err = apply(t, kind, DelayEach(d), func(xs ...any) (any, error) { return xs[0], nil }, list(list("x"), nil))
		if err != nil {
			t.Fatal(err)
		}
		testutil.Equal(t, got, []any{"x"})

		_, err = apply(t, kind, DelayInvoke(-d, "Value"), nil, &counter{})
		testutil.T(t).ErrorCode(err, errors.ErrCodeInvalidInput)
	})
}

func TestDelay_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := engine.NewState(buffer.KindEager, engine.Replace)
	s.Load(pipeline.FromSlice([]any{1, 2}))
	_ = s.Binding().Tap(func(x any) any { return x })
	err := engine.Run(ctx, s, engine.Neutral, DelayMap(time.Hour))
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if s.Buffer(engine.Result).Len() != 0 {
		t.Error("expected nothing committed")
	}
}

func TestDelayedName(t *testing.T) {
	if DelayMap(time.Second).Name() != "delay_map" || Map().Name() != "map" {
		t.Error("unexpected verb names")
	}
	if Invoke("X").Name() != "invoke" || DelayInvoke(time.Second, "X").Name() != "delay_invoke" {
		t.Error("unexpected invoke names")
	}
}
