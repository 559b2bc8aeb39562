package testutil_test

import (
	"testing"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/testutil"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
	fatal  bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func (r *recorder) Fatalf(string, ...any) {
	r.failed = true
	r.fatal = true
}

func TestBackends_RunsEveryKind(t *testing.T) {
	var seen []buffer.Kind
	testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
		seen = append(seen, kind)
	})
	if len(seen) != 2 || seen[0] != buffer.KindEager || seen[1] != buffer.KindLazy {
		t.Errorf("expected eager then lazy, got %v", seen)
	}
}

func TestTHelper_Equal(t *testing.T) {
	r := &recorder{TB: t}
	testutil.T(r).Equal([]any{1, 2}, []any{1, 2})
	if r.failed {
		t.Error("expected equal slices to pass")
	}
	testutil.T(r).Equal([]any{1}, []any{2})
	if !r.failed {
		t.Error("expected different slices to fail")
	}
}

func TestTHelper_NoError(t *testing.T) {
	r := &recorder{TB: t}
	testutil.T(r).NoError(errors.Exhausted(""))
	if !r.fatal {
		t.Error("expected NoError to stop on an error")
	}
}

func TestTHelper_ErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantFail bool
	}{
		{"matching code", errors.Exhausted("first"), false},
		{"other code", errors.NotFound("value", ""), true},
		{"nil error", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{TB: t}
			testutil.T(r).ErrorCode(tc.err, errors.ErrCodeExhausted)
			if r.failed != tc.wantFail {
				t.Errorf("failed = %v, want %v", r.failed, tc.wantFail)
			}
		})
	}
}
