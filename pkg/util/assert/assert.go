// Package assert provides the assertion helpers used throughout the tests.
package assert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/consensys/go-enum/pkg/util/contract"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg...)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg...)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg...)
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg...)
}

// ErrorIs errors if err does not match target (as determined by errors.Is).
func ErrorIs(t *testing.T, err error, target error, msg ...any) {
	t.Helper()
	//
	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error %v, actual: %v", target, err)
	fail(t, msg...)
}

// Panics errors if fn does not panic, otherwise returning the recovered value.
func Panics(t *testing.T, fn func(), msg ...any) (recovered any) {
	t.Helper()
	//
	defer func() {
		if recovered = recover(); recovered == nil {
			t.Errorf("expected panic")
			fail(t, msg...)
		}
	}()
	//
	fn()
	//
	return nil
}

// Violates errors if fn does not raise a contract violation.  When checks are
// compiled out there is nothing to observe, hence the test is skipped.
func Violates(t *testing.T, fn func(), msg ...any) *contract.Violation {
	t.Helper()
	//
	if !contract.Enabled {
		t.Skip("contract checks disabled")
	}
	//
	var violation *contract.Violation
	//
	r := Panics(t, fn, msg...)
	if err, ok := r.(error); !ok || !errors.As(err, &violation) {
		t.Errorf("expected contract violation, got: %v", r)
		fail(t, msg...)
	}
	//
	return violation
}

func fail(t *testing.T, msg ...any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
