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

// Package solve runs Gaussian elimination over GF(2) to find one or all
// solutions of a flattened list of BitExprs constrained to zero,
// grounded on xorsat's xorsat__solve_zeros (original_source/xorsat):
// build the augmented matrix, echelonize, detect infeasibility from a
// "0 = 1" row, back-substitute bottom-up for the particular solution,
// and — in all-solutions mode — extract a kernel basis and hand back a
// lazily-enumerating Iter instead of decoding every coset member
// upfront.
package solve

import (
	"fmt"

	"github.com/gf2kit/gf2x/internal/gf2log"
	"github.com/gf2kit/gf2x/pkg/gf2"
	"github.com/gf2kit/gf2x/pkg/gf2/bits"
	"github.com/gf2kit/gf2x/pkg/gf2/gf2err"
	"github.com/gf2kit/gf2x/pkg/gf2/matrix"
)

// maxEquations bounds the number of constraint rows a solve call
// accepts, matching maxSystemWidth's 2^31 class of limit (spec.md §7
// OverflowError: "equation count >= 2^31").
const maxEquations = 1 << 31

// Solve finds the unique zero-free-variables solution of cs (a
// flattened list of must-be-zero BitExprs) and returns it as a Model.
func Solve(cs []gf2.BitExpr) (Model, error) {
	x, sys, _, err := eliminate(cs)
	if err != nil {
		return Model{}, err
	}

	return decode(sys, x), nil
}

// SolveAll finds the full affine solution set of cs and returns an Iter
// that lazily enumerates every model in it.
func SolveAll(cs []gf2.BitExpr) (*Iter, error) {
	x, sys, m, err := eliminate(cs)
	if err != nil {
		return nil, err
	}

	pivots := m.Echelonize(true)

	kernel, err := m.Kernel(pivots)
	if err != nil {
		return nil, err
	}

	gf2log.KernelStats(uint(len(kernel)))

	return newIter(sys, x, kernel), nil
}

// eliminate builds the augmented matrix from cs, echelonizes it
// (non-reduced form, sufficient for the particular solution), checks
// feasibility, and back-substitutes the particular solution x. It
// returns the matrix too (still in non-reduced echelon form) so
// SolveAll can re-echelonize in reduced form for kernel extraction
// without rebuilding from cs.
func eliminate(cs []gf2.BitExpr) (bits.Set, *gf2.LinearSystem, *matrix.Matrix, error) {
	if len(cs) == 0 {
		return bits.Set{}, nil, nil, fmt.Errorf("%w: constraint list must not be empty", gf2err.ErrDomain)
	}

	if len(cs) >= maxEquations {
		return bits.Set{}, nil, nil, fmt.Errorf("%w: equation count must be < 2^31", gf2err.ErrOverflow)
	}

	sys := cs[0].System()

	for _, c := range cs[1:] {
		if c.System() != sys {
			return bits.Set{}, nil, nil, fmt.Errorf("%w", gf2err.ErrCrossSystem)
		}
	}

	width := sys.Width()
	m := matrix.New(uint(len(cs)), width)

	for r, c := range cs {
		for _, t := range c.Terms() {
			m.WriteBit(uint(r), t.Var.Offset+t.Index, true)
		}

		m.WriteBit(uint(r), width, c.Constant() == 1)
	}

	gf2log.MatrixStats(m.Rows(), m.Cols())
	gf2log.RowDensity(rowPopcounts(m)...)

	pivots := m.Echelonize(false)

	gf2log.EchelonStats(uint(len(pivots)))

	for r := uint(0); r < m.Rows(); r++ {
		if m.IsZeroRowInconsistent(r) {
			return bits.Set{}, nil, nil, fmt.Errorf("%w", gf2err.ErrInfeasible)
		}
	}

	x := backSubstitute(m, pivots, width)

	return x, sys, m, nil
}

// rowPopcounts returns the number of set coefficient bits in each row of
// m, for gf2log.RowDensity's diagnostic.
func rowPopcounts(m *matrix.Matrix) []uint64 {
	counts := make([]uint64, m.Rows())
	for r := uint(0); r < m.Rows(); r++ {
		n := m.Row(r).Popcount()
		if m.ReadBit(r, m.Cols()) {
			n--
		}

		counts[r] = uint64(n)
	}

	return counts
}

// backSubstitute computes the unique particular solution with every
// free variable pinned to 0: iterate pivot rows bottom-to-top, setting
// x[leadCol] = rhs ⊕ XOR of already-solved higher columns in that row.
func backSubstitute(m *matrix.Matrix, pivots []matrix.Pivot, width uint) bits.Set {
	x := bits.New(width)

	for i := len(pivots) - 1; i >= 0; i-- {
		p := pivots[i]

		val := m.ReadBit(p.Row, width)

		for c := p.Col + 1; c < width; c++ {
			if m.ReadBit(p.Row, c) && x.Test(c) {
				val = !val
			}
		}

		x.SetBit(p.Col, val)
	}

	return x
}
