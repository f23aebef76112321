// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package matrix provides row-major matrices of lanes.Set rows, and a
// row/column key annotation on top of them.
package matrix

import (
	"github.com/grailbio/simdext/lanes"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidShape is returned for an empty or ragged row set.
	ErrInvalidShape = errors.New("matrix: invalid shape")
	// ErrCardinalityMismatch is returned when key counts don't match the
	// matrix dimensions.
	ErrCardinalityMismatch = errors.New("matrix: key count does not match dimension")
	// ErrOutOfRange is returned for a row range outside the matrix.  Column
	// ranges are checked by lanes.Set.Slice, so this is lanes.ErrOutOfRange
	// and a single errors.Is check covers both.
	ErrOutOfRange = lanes.ErrOutOfRange
)

// Matrix is an immutable, non-empty sequence of rows with equal logical
// length.
type Matrix[T lanes.Element] struct {
	rows []*lanes.Set[T]
	nCol int
}

// New returns a matrix over rows.  It returns ErrInvalidShape if rows is
// empty, contains nil, or has rows of differing logical length.
func New[T lanes.Element](rows []*lanes.Set[T]) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "no rows")
	}
	for i, row := range rows {
		if row == nil {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d is nil", i)
		}
	}
	nCol := rows[0].Len()
	for i, row := range rows[1:] {
		if row.Len() != nCol {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d has %d columns, row 0 has %d", i+1, row.Len(), nCol)
		}
	}
	return &Matrix[T]{
		rows: append([]*lanes.Set[T](nil), rows...),
		nCol: nCol,
	}, nil
}

// RowCount returns the number of rows.
func (m *Matrix[T]) RowCount() int { return len(m.rows) }

// ColumnCount returns the logical length shared by all rows.
func (m *Matrix[T]) ColumnCount() int { return m.nCol }

// Row returns row i.
func (m *Matrix[T]) Row(i int) *lanes.Set[T] { return m.rows[i] }

// Rows returns a copy of the row list.
func (m *Matrix[T]) Rows() []*lanes.Set[T] {
	return append([]*lanes.Set[T](nil), m.rows...)
}

// Slice returns the sub-matrix of rowCount rows starting at rowStart, each
// sliced to colCount columns starting at colStart.  Row bounds are checked
// here; column bounds are checked by each row's Slice.  Both fail with
// ErrOutOfRange.  rowCount == 0 yields ErrInvalidShape, since a matrix can't
// be empty.
func (m *Matrix[T]) Slice(rowStart, rowCount, colStart, colCount int) (*Matrix[T], error) {
	if rowStart < 0 || rowStart > len(m.rows) {
		return nil, errors.Wrapf(ErrOutOfRange, "row start %d, %d rows", rowStart, len(m.rows))
	}
	if rowCount < 0 || rowStart+rowCount > len(m.rows) {
		return nil, errors.Wrapf(ErrOutOfRange, "rows [%d:%d+%d], %d rows", rowStart, rowStart, rowCount, len(m.rows))
	}
	rows := make([]*lanes.Set[T], rowCount)
	for r := range rows {
		row, err := m.rows[rowStart+r].Slice(colStart, colCount)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", rowStart+r)
		}
		rows[r] = row
	}
	return New(rows)
}
