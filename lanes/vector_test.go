// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lanes_test

import (
	"testing"

	"github.com/grailbio/simdext/lanes"
	"github.com/grailbio/testutil/expect"
)

func TestMergeKernels(t *testing.T) {
	a := lanes.Vector[int32]{1, -5, 7, 0}
	b := lanes.Vector[int32]{2, -6, 7, 3}
	tests := []struct {
		name string
		fn   lanes.MergeFunc[int32]
		want lanes.Vector[int32]
	}{
		{"Add", lanes.Add[int32], lanes.Vector[int32]{3, -11, 14, 3}},
		{"Sub", lanes.Sub[int32], lanes.Vector[int32]{-1, 1, 0, -3}},
		{"Mul", lanes.Mul[int32], lanes.Vector[int32]{2, 30, 49, 0}},
		{"Min", lanes.Min[int32], lanes.Vector[int32]{1, -6, 7, 0}},
		{"Max", lanes.Max[int32], lanes.Vector[int32]{2, -5, 7, 3}},
	}
	for _, tt := range tests {
		dst := make(lanes.Vector[int32], len(a))
		tt.fn(dst, a, b)
		expect.EQ(t, dst, tt.want, tt.name)
	}
}

func TestMapKernels(t *testing.T) {
	src := lanes.Vector[float64]{-1.5, 0, 2, 8}
	tests := []struct {
		name string
		fn   lanes.MapFunc[float64]
		want lanes.Vector[float64]
	}{
		{"Copy", lanes.Copy[float64], lanes.Vector[float64]{-1.5, 0, 2, 8}},
		{"AddConst", lanes.AddConst(0.5), lanes.Vector[float64]{-1, 0.5, 2.5, 8.5}},
		{"MulConst", lanes.MulConst(2.0), lanes.Vector[float64]{-3, 0, 4, 16}},
		{"MaxConst", lanes.MaxConst(0.0), lanes.Vector[float64]{0, 0, 2, 8}},
		{"MinConst", lanes.MinConst(4.0), lanes.Vector[float64]{-1.5, 0, 2, 4}},
	}
	for _, tt := range tests {
		dst := make(lanes.Vector[float64], len(src))
		tt.fn(dst, src)
		expect.EQ(t, dst, tt.want, tt.name)
	}
}

func TestFill(t *testing.T) {
	dst := make(lanes.Vector[uint16], 5)
	lanes.Fill(dst, 7)
	expect.EQ(t, dst, lanes.Vector[uint16]{7, 7, 7, 7, 7})
}

// A local-alignment style row update: max(0, max(diag+score, up-gap)).
func TestComposedRowUpdate(t *testing.T) {
	diag := lanes.FromSlice([]int16{0, 3, 5, 1, 0, 2, 9, 4, 4, 1, 0})
	score := lanes.FromSlice([]int16{2, -1, 2, -1, -1, 2, 2, -1, 2, -1, -1})
	up := lanes.FromSlice([]int16{1, 1, 6, 4, 0, 0, 8, 8, 3, 0, 0})

	fromDiag := diag.Merge(score, lanes.Add[int16], false, nil)
	fromUp := up.Map(lanes.AddConst[int16](-2), nil)
	row := fromDiag.Merge(fromUp, lanes.Max[int16], false, nil).Map(lanes.MaxConst[int16](0), nil)
	expect.EQ(t, row.Data(), []int16{2, 2, 7, 2, 0, 4, 11, 6, 6, 0, 0})
}
