// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lanes

import (
	"unsafe"

	"github.com/grailbio/base/simd"
)

// Element is the set of fixed-size numeric types that can occupy a lane.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Width returns the number of T elements in one lane vector.  It is a power
// of two, and constant for the lifetime of the process.
func Width[T Element]() int {
	var zero T
	return vectorBytes / int(unsafe.Sizeof(zero))
}

// roundUp rounds n up to a multiple of the lane width w.
func roundUp(n, w int) int {
	return simd.RoundUpPow2(n, w)
}

// Vector is one lane: a window of exactly Width[T]() elements.
type Vector[T Element] []T

// MapFunc computes dst from src.  Both have length Width[T]().  src must not
// be modified; it may alias a Set's backing slice or tail.
type MapFunc[T Element] func(dst, src Vector[T])

// MergeFunc computes dst from a and b.  All three have length Width[T]().
// a and b must not be modified.
type MergeFunc[T Element] func(dst, a, b Vector[T])

// Copy is the identity MapFunc.
func Copy[T Element](dst, src Vector[T]) {
	copy(dst, src)
}

// Fill sets every element of dst to val.
func Fill[T Element](dst Vector[T], val T) {
	for i := range dst {
		dst[i] = val
	}
}

// Add sets dst[i] := a[i] + b[i].
func Add[T Element](dst, a, b Vector[T]) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub sets dst[i] := a[i] - b[i].
func Sub[T Element](dst, a, b Vector[T]) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul sets dst[i] := a[i] * b[i].
func Mul[T Element](dst, a, b Vector[T]) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Min sets dst[i] := min(a[i], b[i]).
func Min[T Element](dst, a, b Vector[T]) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Max sets dst[i] := max(a[i], b[i]).
func Max[T Element](dst, a, b Vector[T]) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// AddConst returns a MapFunc that adds c to every element.
func AddConst[T Element](c T) MapFunc[T] {
	return func(dst, src Vector[T]) {
		src = src[:len(dst)]
		for i := range dst {
			dst[i] = src[i] + c
		}
	}
}

// MulConst returns a MapFunc that multiplies every element by c.
func MulConst[T Element](c T) MapFunc[T] {
	return func(dst, src Vector[T]) {
		src = src[:len(dst)]
		for i := range dst {
			dst[i] = src[i] * c
		}
	}
}

// MaxConst returns a MapFunc that clamps every element from below at c.
// MaxConst(0) is the usual local-alignment floor.
func MaxConst[T Element](c T) MapFunc[T] {
	return func(dst, src Vector[T]) {
		src = src[:len(dst)]
		for i := range dst {
			if src[i] > c {
				dst[i] = src[i]
			} else {
				dst[i] = c
			}
		}
	}
}

// MinConst returns a MapFunc that clamps every element from above at c.
func MinConst[T Element](c T) MapFunc[T] {
	return func(dst, src Vector[T]) {
		src = src[:len(dst)]
		for i := range dst {
			if src[i] < c {
				dst[i] = src[i]
			} else {
				dst[i] = c
			}
		}
	}
}
