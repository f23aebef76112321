// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bufpool

import (
	"github.com/grailbio/base/log"
)

// bucket holds every buffer ever allocated for one length.  bufs[:next] are
// in use in the current pass; bufs[next:] are free.
type bucket[T any] struct {
	bufs [][]T
	next int
}

// Pool hands out exact-length buffers and reclaims all of them at once.  The
// zero value is ready to use.
type Pool[T any] struct {
	buckets map[int]*bucket[T]
}

// New returns an empty Pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{buckets: make(map[int]*bucket[T])}
}

// Rent returns a buffer of exactly n elements.  The buffer's contents are
// whatever the previous holder left there; it is only zeroed when freshly
// allocated.
//
// The buffer belongs to the caller until the next ResetAll() call.  After
// that, it may be handed to someone else.
func (p *Pool[T]) Rent(n int) []T {
	if n < 0 {
		log.Panicf("bufpool.Rent: negative length %d", n)
	}
	if p.buckets == nil {
		p.buckets = make(map[int]*bucket[T])
	}
	b, ok := p.buckets[n]
	if !ok {
		buf := make([]T, n)
		p.buckets[n] = &bucket[T]{
			bufs: [][]T{buf},
			next: 1,
		}
		return buf
	}
	if b.next < len(b.bufs) {
		buf := b.bufs[b.next]
		b.next++
		return buf
	}
	buf := make([]T, n)
	b.bufs = append(b.bufs, buf)
	b.next++
	return buf
}

// ResetAll declares every rented buffer free.  Subsequent Rent calls for a
// given length return the same buffer instances in the same order as
// before.  Nothing is deallocated.
func (p *Pool[T]) ResetAll() {
	if log.At(log.Debug) {
		st := p.Stats()
		log.Debug.Printf("bufpool: reset %d/%d buffers in %d buckets (%d elements held)",
			st.Rented, st.Buffers, st.Buckets, st.Elements)
	}
	for _, b := range p.buckets {
		b.next = 0
	}
}

// Stats describes the buffers currently held by a Pool.
type Stats struct {
	// Buckets is the number of distinct lengths requested so far.
	Buckets int
	// Buffers is the total number of buffers held across all buckets.
	Buffers int
	// Rented is the number of buffers handed out since the last ResetAll.
	Rented int
	// Elements is the sum of the lengths of all held buffers.
	Elements int
}

// Stats returns usage counters for p.
func (p *Pool[T]) Stats() (st Stats) {
	st.Buckets = len(p.buckets)
	for n, b := range p.buckets {
		st.Buffers += len(b.bufs)
		st.Rented += b.next
		st.Elements += n * len(b.bufs)
	}
	return st
}
