// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tolcheck provides an accumulating tolerance checker for
comparing float64 and float32 scalars, slices, and 2D grids in tests.

Unlike an assertion that stops at the first mismatch, a [Checker]
records each failure on an internal flag and keeps going, so that one
test run can surface every mismatch. Each failed comparison prints a
FAILURE diagnostic to [Checker.Out]. The accumulated flag only becomes
a hard stop when [Checker.RaiseIfFailed] is called, typically at the
end of the test; the surrounding harness recovers the resulting panic
at the test-case boundary so later tests still run.

A checker is owned by one sequential test flow and does no locking;
concurrent tests should each construct their own.
*/
package tolcheck

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrFailed is the panic value of [Checker.RaiseIfFailed] when any
// comparison since the last [Checker.Reset] has mismatched.
var ErrFailed = errors.New("Test failed.")

// Checker accumulates tolerance-comparison failures over float64
// inputs. The zero value writes diagnostics to [os.Stdout]; use [New]
// or set [Checker.Out] directly.
type Checker struct {

	// Out is the diagnostic stream that mismatch reports are written
	// to. If nil, [os.Stdout] is used.
	Out io.Writer

	failed bool
}

// New returns a new checker in the passing state, reporting to
// [os.Stdout].
func New() *Checker {
	return &Checker{Out: os.Stdout}
}

// Failed reports whether any comparison since the last [Checker.Reset]
// has mismatched.
func (ck *Checker) Failed() bool {
	return ck.failed
}

// Reset returns the checker to the passing state, regardless of the
// current state.
func (ck *Checker) Reset() {
	ck.failed = false
}

// RaiseIfFailed panics with [ErrFailed] if any comparison since the
// last [Checker.Reset] has mismatched, and otherwise does nothing.
// This is the only point where accumulated failures become a hard
// stop: callers invoke it at the end of a test, and the test harness
// recovers the panic per test case.
func (ck *Checker) RaiseIfFailed() {
	if ck.failed {
		panic(ErrFailed)
	}
}

// fail prints the diagnostic for msg and records the failure.
func (ck *Checker) fail(msg string) {
	out := ck.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "FAILURE: %s\n\n", msg)
	ck.failed = true
}

// Near checks that actual is within tol of expected, inclusive:
// |actual - expected| <= tol passes silently. Otherwise it prints
// msg and records the failure.
func (ck *Checker) Near(actual, expected, tol float64, msg string) {
	if math.Abs(actual-expected) <= tol {
		return
	}
	ck.fail(msg)
}

// NearSlice checks that the elements of actual are within tol of the
// corresponding elements of expected, inclusive. A length mismatch is
// reported as a size mismatch without comparing any elements.
// Otherwise scanning stops at the first out-of-tolerance element,
// reported as an element mismatch. A passing check prints nothing.
func (ck *Checker) NearSlice(actual, expected []float64, tol float64, msg string) {
	if len(actual) != len(expected) {
		ck.fail(msg + " Size mismatch.")
		return
	}
	for i, av := range actual {
		if math.Abs(av-expected[i]) <= tol {
			continue
		}
		ck.fail(msg + " Element mismatch.")
		return
	}
}

// NearGrid checks that the elements of the 2D grid actual are within
// tol of the corresponding elements of expected, inclusive. If the
// grids differ in shape on either axis, a shape mismatch is reported
// and no elements are compared. Otherwise elements are scanned in
// row-major order and any out-of-tolerance element is reported as an
// element mismatch, without coordinates. A passing check prints
// nothing.
func (ck *Checker) NearGrid(actual, expected [][]float64, tol float64, msg string) {
	ck.nearGrid(actual, expected, tol, msg, false)
}

// NearGridAt is [Checker.NearGrid] with coordinate reporting: the
// first out-of-tolerance element in row-major order is reported with
// its 0-based (i, j) position.
func (ck *Checker) NearGridAt(actual, expected [][]float64, tol float64, msg string) {
	ck.nearGrid(actual, expected, tol, msg, true)
}

// nearGrid is the shared grid scan behind [Checker.NearGrid] and
// [Checker.NearGridAt], differing only in the failure message.
func (ck *Checker) nearGrid(actual, expected [][]float64, tol float64, msg string, coords bool) {
	if !sameShape(actual, expected) {
		ck.fail(msg + " Shape mismatch.")
		return
	}
	for i, row := range actual {
		for j, av := range row {
			if math.Abs(av-expected[i][j]) <= tol {
				continue
			}
			if coords {
				ck.fail(fmt.Sprintf("%s Element mismatch at (%d, %d).", msg, i, j))
			} else {
				ck.fail(msg + " Element mismatch.")
			}
			return
		}
	}
}

// sameShape reports whether a and b have the same dimensions on both
// axes.
func sameShape[T any](a, b [][]T) bool {
	if len(a) != len(b) {
		return false
	}
	for i, row := range a {
		if len(row) != len(b[i]) {
			return false
		}
	}
	return true
}
