// Package testutil provides shared test infrastructure for knife packages.
//
// Buffer-backed behaviour has to hold for every backend, so tests are
// written once and run per backend:
//
//	func TestExtend(t *testing.T) {
//	    testutil.Backends(t, func(t *testing.T, kind buffer.Kind) {
//	        b := buffer.New(kind)
//	        ...
//	    })
//	}
//
// The THelper wrapper bundles the assertions the package tests share:
//
//	h := testutil.T(t)
//	h.Equal(got, want)
//	h.ErrorCode(err, errors.ErrCodeExhausted)
package testutil
