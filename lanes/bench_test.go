// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lanes_test

import (
	"testing"

	"github.com/grailbio/simdext/bufpool"
	"github.com/grailbio/simdext/lanes"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"Short", 150},
	{"Long", 1 << 16},
}

func mergeSubtask(a, b *lanes.Set[int16], pool *bufpool.Pool[int16], nIter int) int {
	sum := 0
	for iter := 0; iter < nIter; iter++ {
		r := a.Merge(b, lanes.Max[int16], false, pool).Map(lanes.MaxConst[int16](0), pool)
		sum += int(r.Data()[0])
		if pool != nil {
			pool.ResetAll()
		}
	}
	return sum
}

func Benchmark_Merge(b *testing.B) {
	for _, bs := range benchSizes {
		a := lanes.FromSlice(iota16(bs.size))
		c := lanes.FromSlice(iota16(bs.size - 1))
		b.Run(bs.name+"Fresh", func(b *testing.B) {
			b.ReportAllocs()
			mergeSubtask(a, c, nil, b.N)
		})
		b.Run(bs.name+"Pooled", func(b *testing.B) {
			b.ReportAllocs()
			mergeSubtask(a, c, bufpool.New[int16](), b.N)
		})
	}
}
