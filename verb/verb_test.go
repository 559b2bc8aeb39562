package verb

import (
	"context"
	"testing"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/pipeline"
	"github.com/kbukum/knife/testutil"
)

// verbCase runs one verb over values and checks the committed Result.
type verbCase struct {
	name   string
	verb   engine.Verb
	tap    any
	values []any
	want   []any
	code   errors.ErrorCode
}

func apply(t *testing.T, kind buffer.Kind, v engine.Verb, tap any, values ...any) ([]any, error) {
	t.Helper()
	s := engine.NewState(kind, engine.Replace)
	s.Load(pipeline.FromSlice(values))
	if tap != nil {
		if err := s.Binding().Tap(tap); err != nil {
			t.Fatalf("tap failed: %v", err)
		}
	}
	err := engine.Run(context.Background(), s, engine.Neutral, v)
	return s.Buffer(engine.Result).Values(), err
}

func runCases(t *testing.T, cases []verbCase) {
	t.Helper()
	testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := apply(t, kind, tc.verb, tc.tap, tc.values...)
				if tc.code != "" {
					testutil.T(t).ErrorCode(err, tc.code)
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				testutil.Equal(t, got, tc.want)
			})
		}
	})
}

func list(values ...any) []any { return values }

func isEven(x any) bool { return x.(int)%2 == 0 }

func TestIdentityAndPack(t *testing.T) {
	runCases(t, []verbCase{
		{name: "identity", verb: Identity(), values: list(1, 2), want: list(1, 2)},
		{name: "pack", verb: Pack(), values: list(1, 2), want: list(list(1, 2))},
		{name: "pack empty", verb: Pack(), want: list([]any{})},
	})
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	for _, name := range []string{"map", "sum", "median", "roundrobin", "smash", "first"} {
		if _, ok := c.Get(name); !ok {
			t.Errorf("expected %q in catalog", name)
		}
	}
	if _, ok := c.Get("span"); ok {
		t.Error("verbs with required arguments must not be in the catalog")
	}
}
