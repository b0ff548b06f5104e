// Package testutil provides shared test utilities for the chess rules engine.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertSameElements compares two string slices ignoring order. Move lists
// are compared this way when generation order is not under test.
func AssertSameElements(t testing.TB, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: error = %v, want %v", msg, err, target)
		} else {
			t.Errorf("error = %v, want %v", err, target)
		}
	}
}

// AssertPanicsWith runs fn and fails unless it panics with an error that
// matches target under errors.Is.
func AssertPanicsWith(t testing.TB, target error, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		msg = "panic"
	}
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%s: function did not panic, want %v", msg, target)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("%s: panic value = %v, want %v", msg, r, target)
		}
	}()
	fn()
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected true but got false", msg)
		} else {
			t.Error("expected true but got false")
		}
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected false but got true", msg)
		} else {
			t.Error("expected false but got true")
		}
	}
}

func reportDiff(t testing.TB, diff string, msgAndArgs ...interface{}) {
	t.Helper()
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
