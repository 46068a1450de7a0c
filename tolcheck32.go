// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
)

// Checker32 is the float32 version of [Checker], with the same
// accumulation, reporting, and escalation behavior.
type Checker32 struct {

	// Out is the diagnostic stream that mismatch reports are written
	// to. If nil, [os.Stdout] is used.
	Out io.Writer

	failed bool
}

// New32 returns a new float32 checker in the passing state, reporting
// to [os.Stdout].
func New32() *Checker32 {
	return &Checker32{Out: os.Stdout}
}

// Failed reports whether any comparison since the last
// [Checker32.Reset] has mismatched.
func (ck *Checker32) Failed() bool {
	return ck.failed
}

// Reset returns the checker to the passing state.
func (ck *Checker32) Reset() {
	ck.failed = false
}

// RaiseIfFailed panics with [ErrFailed] if any comparison since the
// last [Checker32.Reset] has mismatched, and otherwise does nothing.
func (ck *Checker32) RaiseIfFailed() {
	if ck.failed {
		panic(ErrFailed)
	}
}

func (ck *Checker32) fail(msg string) {
	out := ck.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "FAILURE: %s\n\n", msg)
	ck.failed = true
}

// Near checks that actual is within tol of expected, inclusive.
func (ck *Checker32) Near(actual, expected, tol float32, msg string) {
	if math32.Abs(actual-expected) <= tol {
		return
	}
	ck.fail(msg)
}

// NearSlice checks slice elements within tol, reporting a size
// mismatch without comparing elements when the lengths differ.
func (ck *Checker32) NearSlice(actual, expected []float32, tol float32, msg string) {
	if len(actual) != len(expected) {
		ck.fail(msg + " Size mismatch.")
		return
	}
	for i, av := range actual {
		if math32.Abs(av-expected[i]) <= tol {
			continue
		}
		ck.fail(msg + " Element mismatch.")
		return
	}
}

// NearGrid checks 2D grid elements within tol in row-major order,
// reporting a shape mismatch without comparing elements when the
// dimensions differ on either axis.
func (ck *Checker32) NearGrid(actual, expected [][]float32, tol float32, msg string) {
	ck.nearGrid(actual, expected, tol, msg, false)
}

// NearGridAt is [Checker32.NearGrid] with the 0-based (i, j) position
// of the first mismatching element in the failure message.
func (ck *Checker32) NearGridAt(actual, expected [][]float32, tol float32, msg string) {
	ck.nearGrid(actual, expected, tol, msg, true)
}

func (ck *Checker32) nearGrid(actual, expected [][]float32, tol float32, msg string, coords bool) {
	if !sameShape(actual, expected) {
		ck.fail(msg + " Shape mismatch.")
		return
	}
	for i, row := range actual {
		for j, av := range row {
			if math32.Abs(av-expected[i][j]) <= tol {
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
