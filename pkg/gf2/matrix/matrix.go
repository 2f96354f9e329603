// Copyright gf2x contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package matrix is the dense GF(2) matrix collaborator spec.md treats
// as an external dependency: an augmented-matrix store with row-echelon
// reduction and null-space extraction, built on packed
// bits-and-blooms/bitset rows. The row-swap/pivot/eliminate-in-both-
// directions structure below is grounded on the Gaussian elimination
// loop in the mceliece348864 reference implementation's pkGen, adapted
// from its fixed-width byte rows and constant-time masking to
// variable-width bits.Set rows and ordinary branches (gf2x has no
// side-channel requirement).
package matrix

import (
	"fmt"

	"github.com/gf2kit/gf2x/pkg/gf2/bits"
	"github.com/gf2kit/gf2x/pkg/gf2/gf2err"
)

// Matrix is a dense R x (C+1) augmented matrix over GF(2): each row is
// a bits.Set of width C+1, columns [0,C) the coefficient block and
// column C the right-hand side.
type Matrix struct {
	rows []bits.Set
	cols uint // C, excluding the augmented column
}

// New allocates an all-zero R x (C+1) augmented matrix.
func New(r, c uint) *Matrix {
	rows := make([]bits.Set, r)
	for i := range rows {
		rows[i] = bits.New(c + 1)
	}

	return &Matrix{rows: rows, cols: c}
}

// Rows returns R, the number of equation rows.
func (m *Matrix) Rows() uint {
	return uint(len(m.rows))
}

// Cols returns C, the coefficient width (excluding the augmented
// column).
func (m *Matrix) Cols() uint {
	return m.cols
}

// ReadBit reads column c of row r (c may be m.cols to read the
// augmented column).
func (m *Matrix) ReadBit(r, c uint) bool {
	return m.rows[r].Test(c)
}

// WriteBit sets column c of row r.
func (m *Matrix) WriteBit(r, c uint, v bool) {
	m.rows[r].SetBit(c, v)
}

// Row returns the backing bits.Set for row r, for bulk loading (e.g.
// from a BitExpr's mask, plus the compl bit in the augmented column).
func (m *Matrix) Row(r uint) bits.Set {
	return m.rows[r]
}

// SetRow replaces row r wholesale; row must have width C+1.
func (m *Matrix) SetRow(r uint, row bits.Set) {
	m.rows[r] = row
}

// XorRowInto xors row src into row dst (dst ^= src), in place.
func (m *Matrix) XorRowInto(dst, src uint) {
	m.rows[dst].XorInplace(m.rows[src])
}

func (m *Matrix) swapRows(a, b uint) {
	m.rows[a], m.rows[b] = m.rows[b], m.rows[a]
}

// Echelonize reduces the matrix to row-echelon form in place and
// returns one Pivot per pivot row, in row order, naming the column it
// pivots on; rows left all-zero in the coefficient block get no entry
// and sit below every pivot row. When full is
// true, every pivot column is cleared above as well as below (reduced
// row-echelon form), which the solver's particular-solution
// back-substitution does not require but all-solutions mode's kernel
// extraction does.
func (m *Matrix) Echelonize(full bool) []Pivot {
	pivots := make([]Pivot, 0, len(m.rows))
	row := uint(0)

	for col := uint(0); col < m.cols && row < uint(len(m.rows)); col++ {
		sel := uint(0)
		found := false

		for r := row; r < uint(len(m.rows)); r++ {
			if m.rows[r].Test(col) {
				sel = r
				found = true

				break
			}
		}

		if !found {
			continue
		}

		if sel != row {
			m.swapRows(sel, row)
		}

		for r := uint(0); r < uint(len(m.rows)); r++ {
			if r == row {
				continue
			}

			if !full && r < row {
				continue
			}

			if m.rows[r].Test(col) {
				m.rows[r].XorInplace(m.rows[row])
			}
		}

		pivots = append(pivots, Pivot{Row: row, Col: col})
		row++
	}

	return pivots
}

// Pivot records that row Row's leading 1 (in the coefficient block) is
// at column Col.
type Pivot struct {
	Row, Col uint
}

// IsZeroRowInconsistent reports whether row r is all-zero in the
// coefficient block [0,C) but carries a 1 in the augmented column — the
// "0 = 1" signature of an infeasible system.
func (m *Matrix) IsZeroRowInconsistent(r uint) bool {
	if m.rows[r].Test(m.cols) {
		for c := uint(0); c < m.cols; c++ {
			if m.rows[r].Test(c) {
				return false
			}
		}

		return true
	}

	return false
}

// Kernel computes a basis for the null space of the coefficient block
// M[:, 0..C), assuming m is already in reduced row-echelon form
// (Echelonize(true)) with the given pivots; on a non-reduced form the
// vectors it returns are not kernel vectors. One basis vector is produced
// per free (non-pivot) column.
func (m *Matrix) Kernel(pivots []Pivot) ([]bits.Set, error) {
	if m.cols > 1<<31-1 {
		return nil, fmt.Errorf("%w: system width exceeds matrix size limits", gf2err.ErrOverflow)
	}

	isPivotCol := make([]bool, m.cols)
	rowOfCol := make([]uint, m.cols)

	for _, p := range pivots {
		isPivotCol[p.Col] = true
		rowOfCol[p.Col] = p.Row
	}

	basis := make([]bits.Set, 0, m.cols)

	for free := uint(0); free < m.cols; free++ {
		if isPivotCol[free] {
			continue
		}

		vec := bits.New(m.cols)
		vec.SetBit(free, true)

		for _, p := range pivots {
			if m.rows[p.Row].Test(free) {
				vec.SetBit(p.Col, true)
			}
		}

		basis = append(basis, vec)
	}

	return basis, nil
}
