// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/grailbio/simdext/lanes"
	"github.com/pkg/errors"
)

// Keyed pairs a Matrix with one key per row and one key per column.
type Keyed[K any, T lanes.Element] struct {
	rowKeys, colKeys []K
	m                *Matrix[T]
}

// NewKeyed returns a Keyed matrix.  It returns ErrCardinalityMismatch unless
// len(rowKeys) == m.RowCount() and len(colKeys) == m.ColumnCount().  The key
// slices are copied.
func NewKeyed[K any, T lanes.Element](rowKeys, colKeys []K, m *Matrix[T]) (*Keyed[K, T], error) {
	if m == nil {
		return nil, errors.Wrap(ErrInvalidShape, "nil matrix")
	}
	if len(rowKeys) != m.RowCount() {
		return nil, errors.Wrapf(ErrCardinalityMismatch, "%d row keys, %d rows", len(rowKeys), m.RowCount())
	}
	if len(colKeys) != m.ColumnCount() {
		return nil, errors.Wrapf(ErrCardinalityMismatch, "%d column keys, %d columns", len(colKeys), m.ColumnCount())
	}
	return &Keyed[K, T]{
		rowKeys: append([]K(nil), rowKeys...),
		colKeys: append([]K(nil), colKeys...),
		m:       m,
	}, nil
}

// RowKeys returns a copy of the row keys.
func (k *Keyed[K, T]) RowKeys() []K { return append([]K(nil), k.rowKeys...) }

// ColKeys returns a copy of the column keys.
func (k *Keyed[K, T]) ColKeys() []K { return append([]K(nil), k.colKeys...) }

// Matrix returns the annotated matrix.
func (k *Keyed[K, T]) Matrix() *Matrix[T] { return k.m }
