// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bufpool provides an exact-length buffer cache for tight numeric
// loops.
//
// sync.Pool and size-class pools don't fit the lane operations in
// github.com/grailbio/simdext/lanes for three reasons:
//
// - Callers need slices of precisely the requested length.  A pool that
// returns a larger buffer forces either a reslice (which changes the lane
// tail arithmetic) or a copy.
//
// - Lane results are handed to immutable lanes.Set values, so there is no
// natural point at which an individual buffer could be Put back.
//
// - The typical loop (one score-matrix row per iteration) wants to give back
// every buffer at once at the end of an iteration.
//
// A Pool therefore never frees anything.  Rent hands out buffers in order,
// and ResetAll rewinds all of them so the next pass replays the same
// instances.  The peak number of buffers stabilizes after the first pass.
//
// A Pool is not safe for concurrent use.  Give each goroutine its own Pool.
package bufpool
