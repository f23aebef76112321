// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lanes

import (
	"github.com/grailbio/simdext/bufpool"
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when a slice range falls outside a Set's
	// backing slice.
	ErrOutOfRange = errors.New("lanes: out of range")
	// ErrInvalidArgument is returned by New for a logical length that is
	// negative or exceeds the buffer.
	ErrInvalidArgument = errors.New("lanes: invalid argument")
)

// Set is an immutable numeric sequence processed one lane at a time.
//
// Its backing slice may be longer than the logical length: results of Map
// and Merge are rounded up to whole lanes.  Lane reads always cover the
// backing slice, but Data() and Len() only report the logical part.
type Set[T Element] struct {
	// data is the backing slice.  Never modified through a Set.
	data []T
	// n is the logical length, 0 <= n <= len(data).
	n int
	// tail holds the final len(data) % Width[T]() elements of data followed by
	// zeros.  len(tail) == Width[T]() even when data has no partial lane.
	tail []T
}

// New returns a Set over buf with logical length n.
//
// n == 0 means "all of buf", so New cannot produce an empty view over a
// non-empty buffer; use Slice(start, 0) for that.  A negative n, or one
// larger than len(buf), returns ErrInvalidArgument.
//
// The Set aliases buf.  The caller must not modify buf while the Set is in
// use.
func New[T Element](buf []T, n int) (*Set[T], error) {
	if n < 0 || n > len(buf) {
		return nil, errors.Wrapf(ErrInvalidArgument, "logical length %d, buffer length %d", n, len(buf))
	}
	if n == 0 {
		n = len(buf)
	}
	return newSet(buf, n), nil
}

// FromSlice returns a Set covering all of buf.
func FromSlice[T Element](buf []T) *Set[T] {
	return newSet(buf, len(buf))
}

// newSet skips New's zero-length convention; internal callers always know
// the exact logical length.
func newSet[T Element](data []T, n int) *Set[T] {
	w := Width[T]()
	tail := make([]T, w)
	if rem := len(data) & (w - 1); rem != 0 {
		copy(tail, data[len(data)-rem:])
	}
	return &Set[T]{
		data: data[:len(data):len(data)],
		n:    n,
		tail: tail,
	}
}

// Len returns the logical length.
func (s *Set[T]) Len() int { return s.n }

// Cap returns the length of the backing slice.  It is at least Len(), and
// is a multiple of Width[T]() for results of Map and Merge.
func (s *Set[T]) Cap() int { return len(s.data) }

// Data returns the logical elements.  The result aliases the backing slice
// and must not be modified.
func (s *Set[T]) Data() []T {
	return s.data[:s.n:s.n]
}

// lane returns the lane starting at offset i: the backing slice when a full
// lane remains there, otherwise the tail.  Offsets past the end of the
// backing slice keep reading the tail.
func (s *Set[T]) lane(i, w int) Vector[T] {
	if len(s.data)-i >= w {
		return Vector[T](s.data[i : i+w : i+w])
	}
	return s.tail
}

// allocate returns a result buffer holding n elements rounded up to whole
// lanes.
func allocate[T Element](pool *bufpool.Pool[T], n, w int) []T {
	n = roundUp(n, w)
	if pool != nil {
		return pool.Rent(n)
	}
	return make([]T, n)
}

// Map applies fn to every lane of the backing slice and returns a Set of the
// same logical length.  The result buffer comes from pool when pool is
// non-nil, and is then only valid until pool.ResetAll().
func (s *Set[T]) Map(fn MapFunc[T], pool *bufpool.Pool[T]) *Set[T] {
	w := Width[T]()
	nData := len(s.data)
	result := allocate(pool, nData, w)
	for i := 0; i < nData; i += w {
		fn(Vector[T](result[i:i+w:i+w]), s.lane(i, w))
	}
	return newSet(result, s.n)
}

// Merge combines s and other lane by lane with fn, over
// max(s.Len(), other.Len()) elements.  Once fewer than Width[T]() elements
// of an operand remain at an offset, every further lane of that operand is
// read from its zero-padded tail.
//
// The result's logical length is min(s.Len(), other.Len()) unless
// includeHangovers is set, in which case it is the max and the extra
// elements hold fn applied against the shorter operand's tail.
func (s *Set[T]) Merge(other *Set[T], fn MergeFunc[T], includeHangovers bool, pool *bufpool.Pool[T]) *Set[T] {
	w := Width[T]()
	maxLen, minLen := s.n, other.n
	if minLen > maxLen {
		maxLen, minLen = minLen, maxLen
	}
	result := allocate(pool, maxLen, w)
	for i := 0; i < maxLen; i += w {
		fn(Vector[T](result[i:i+w:i+w]), s.lane(i, w), other.lane(i, w))
	}
	n := minLen
	if includeHangovers {
		n = maxLen
	}
	return newSet(result, n)
}

// Slice returns a Set over data[start:start+length] of the backing slice,
// with its own tail.  It returns ErrOutOfRange unless
// 0 <= start < Cap() and 0 <= length <= Cap()-start.
func (s *Set[T]) Slice(start, length int) (*Set[T], error) {
	if start < 0 || start >= len(s.data) {
		return nil, errors.Wrapf(ErrOutOfRange, "slice start %d, backing length %d", start, len(s.data))
	}
	if length < 0 || start+length > len(s.data) {
		return nil, errors.Wrapf(ErrOutOfRange, "slice [%d:%d+%d], backing length %d", start, start, length, len(s.data))
	}
	return newSet(s.data[start:start+length], length), nil
}
