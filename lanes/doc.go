// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lanes provides fixed-width lane processing over one-dimensional
// numeric slices.
//
// A Set is a logical sequence of numbers stored in a backing slice and
// processed Width[T]() elements at a time.  The last, partial lane of the
// backing slice is copied into a zero-padded tail at construction, so the
// inner loops of Map and Merge only decide per stride whether to read the
// backing slice or the tail.  Results are written into buffers whose length
// is rounded up to a multiple of the lane width, and the logical length is
// tracked separately so callers never see the padding.
//
// The lane width is a process-wide value chosen once in init() from the
// CPU's widest usable vector registers (see ActiveISA).  It can be pinned
// with the SIMDEXT_ISA environment variable, or forced to the generic width
// with the purego build tag.
//
// Lane functions (MapFunc, MergeFunc) write into a destination lane instead
// of returning one, so Map and Merge allocate nothing beyond the result
// buffer.  Pass a *bufpool.Pool to reuse result buffers across passes.
package lanes
