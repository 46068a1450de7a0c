// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolcheck

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecker32() (*Checker32, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Checker32{Out: buf}, buf
}

func TestNear32(t *testing.T) {
	ck, buf := newChecker32()

	ck.Near(5.0, 5.0001, 0.001, "ok")
	assert.False(t, ck.Failed())
	assert.Equal(t, "", buf.String())

	ck.Near(5.0, 5.1, 0.001, "bad")
	assert.True(t, ck.Failed())
	assert.Equal(t, "FAILURE: bad\n\n", buf.String())
}

func TestNear32Boundary(t *testing.T) {
	ck, _ := newChecker32()

	ck.Near(2.0, 1.0, 1.0, "at tolerance")
	assert.False(t, ck.Failed())

	ck.Near(2.0, 1.0, 1.0-1.0e-6, "just beyond")
	assert.True(t, ck.Failed())
}

func TestNearSlice32(t *testing.T) {
	ck, buf := newChecker32()

	ck.NearSlice([]float32{1, 2}, []float32{1, 2, 3}, 0.001, "sizes")
	assert.Equal(t, "FAILURE: sizes Size mismatch.\n\n", buf.String())

	ck.Reset()
	buf.Reset()

	ck.NearSlice([]float32{1, 2.5}, []float32{1, 2}, 0.001, "bad")
	assert.True(t, ck.Failed())
	assert.Equal(t, "FAILURE: bad Element mismatch.\n\n", buf.String())
}

func TestNearGrid32(t *testing.T) {
	ck, buf := newChecker32()

	a := [][]float32{{1, 2}, {3, 9}}
	b := [][]float32{{1, 2}, {3, 4}}
	ck.NearGrid(a, b, 0.001, "bulk")
	assert.Equal(t, "FAILURE: bulk Element mismatch.\n\n", buf.String())

	ck.Reset()
	buf.Reset()

	ck.NearGridAt(a, b, 0.001, "coords")
	assert.Equal(t, "FAILURE: coords Element mismatch at (1, 1).\n\n", buf.String())

	ck.Reset()
	buf.Reset()

	ck.NearGrid(a, [][]float32{{1, 2}}, 0.001, "shape")
	assert.Equal(t, "FAILURE: shape Shape mismatch.\n\n", buf.String())
}

func TestRaiseIfFailed32(t *testing.T) {
	ck, _ := newChecker32()

	assert.NotPanics(t, ck.RaiseIfFailed)

	ck.Near(0, 1, 0.001, "bad")
	require.True(t, ck.Failed())
	assert.PanicsWithError(t, "Test failed.", ck.RaiseIfFailed)

	ck.Reset()
	assert.NotPanics(t, ck.RaiseIfFailed)
}

func TestNew32(t *testing.T) {
	ck := New32()
	assert.False(t, ck.Failed())
	assert.NotNil(t, ck.Out)
}
