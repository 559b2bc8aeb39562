package testutil

import (
	"reflect"
	"testing"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/errors"
)

// AllBackends lists every buffer backend in test order.
var AllBackends = []buffer.Kind{buffer.KindEager, buffer.KindLazy}

// Backends runs fn as a subtest once per buffer backend.
func Backends(t *testing.T, fn func(t *testing.T, kind buffer.Kind)) {
	t.Helper()
	for _, kind := range AllBackends {
		t.Run(kind.String(), func(t *testing.T) {
			fn(t, kind)
		})
	}
}

// THelper provides testing.T integration for the shared assertions.
type THelper struct {
	t testing.TB
}

// T wraps a testing.TB to provide helper methods.
func T(t testing.TB) *THelper {
	return &THelper{t: t}
}

// Equal fails the test when got and want are not deeply equal.
func (h *THelper) Equal(got, want any) {
	h.t.Helper()
	if !reflect.DeepEqual(got, want) {
		h.t.Errorf("got %#v, want %#v", got, want)
	}
}

// NoError stops the test on a non-nil error.
func (h *THelper) NoError(err error) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorCode fails the test unless err carries the given code.
func (h *THelper) ErrorCode(err error, code errors.ErrorCode) {
	h.t.Helper()
	if err == nil {
		h.t.Errorf("expected %s error, got nil", code)
		return
	}
	if !errors.HasCode(err, code) {
		h.t.Errorf("expected %s error, got %v", code, err)
	}
}

// Equal is the package-level form of THelper.Equal.
func Equal(t testing.TB, got, want any) {
	t.Helper()
	T(t).Equal(got, want)
}
