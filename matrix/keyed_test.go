// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"testing"

	"github.com/grailbio/simdext/lanes"
	"github.com/grailbio/simdext/matrix"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func TestKeyed(t *testing.T) {
	m, err := matrix.New([]*lanes.Set[float32]{
		lanes.FromSlice([]float32{1, 2, 3}),
		lanes.FromSlice([]float32{4, 5, 6}),
	})
	assert.NoError(t, err)

	rowKeys := []string{"read1", "read2"}
	colKeys := []string{"A", "C", "G"}
	k, err := matrix.NewKeyed(rowKeys, colKeys, m)
	assert.NoError(t, err)
	expect.EQ(t, k.RowKeys(), rowKeys)
	expect.EQ(t, k.ColKeys(), colKeys)
	expect.True(t, k.Matrix() == m)

	// Keys are copied in both directions.
	rowKeys[0] = "changed"
	k.ColKeys()[0] = "changed"
	expect.EQ(t, k.RowKeys()[0], "read1")
	expect.EQ(t, k.ColKeys()[0], "A")
}

func TestKeyedCardinalityMismatch(t *testing.T) {
	m, err := matrix.New([]*lanes.Set[int8]{lanes.FromSlice([]int8{1, 2})})
	assert.NoError(t, err)

	_, err = matrix.NewKeyed([]int{0, 1}, []int{0, 1}, m)
	require.ErrorIs(t, err, matrix.ErrCardinalityMismatch)
	_, err = matrix.NewKeyed([]int{0}, []int{0, 1, 2}, m)
	require.ErrorIs(t, err, matrix.ErrCardinalityMismatch)
	_, err = matrix.NewKeyed[int, int8]([]int{0}, []int{0, 1}, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewKeyed([]int{7}, []int{8, 9}, m)
	assert.NoError(t, err)
}
