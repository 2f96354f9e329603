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

package gf2

import (
	"fmt"

	"github.com/gf2kit/gf2x/pkg/gf2/gf2err"
)

// BitVec is a fixed-length ordered sequence of BitExprs, all drawn from
// the same LinearSystem. Lane 0 is the least significant bit in every
// integer conversion and shift. Immutable after construction.
type BitVec struct {
	sys   *LinearSystem
	lanes []BitExpr
}

// NewBitVec builds a BitVec directly from its lanes (lane 0 = LSB).
// Every lane must belong to the same LinearSystem; the slice must be
// non-empty.
func NewBitVec(lanes ...BitExpr) (BitVec, error) {
	if len(lanes) == 0 {
		return BitVec{}, fmt.Errorf("%w: a BitVec must have at least one lane", gf2err.ErrDomain)
	}

	sys := lanes[0].sys
	for _, l := range lanes[1:] {
		if l.sys != sys {
			return BitVec{}, fmt.Errorf("%w", gf2err.ErrCrossSystem)
		}
	}

	out := make([]BitExpr, len(lanes))
	copy(out, lanes)

	return BitVec{sys: sys, lanes: out}, nil
}

// Len returns the number of lanes, N.
func (v BitVec) Len() int {
	return len(v.lanes)
}

// Lane returns the BitExpr at index i (0 = LSB).
func (v BitVec) Lane(i int) BitExpr {
	return v.lanes[i]
}

// System returns the LinearSystem this BitVec was built from.
func (v BitVec) System() *LinearSystem {
	return v.sys
}

func (v BitVec) laneOrZero(i int) BitExpr {
	if i < len(v.lanes) {
		return v.lanes[i]
	}

	return v.sys.zero
}

// zipLanes pairs up the lanes of a and b, zero-extending the shorter
// side, and checks the two BitVecs share a system. The result has
// max(len(a), len(b)) pairs.
func zipLanes(a, b BitVec) ([][2]BitExpr, error) {
	if a.sys != b.sys {
		return nil, fmt.Errorf("%w", gf2err.ErrCrossSystem)
	}

	n := len(a.lanes)
	if len(b.lanes) > n {
		n = len(b.lanes)
	}

	out := make([][2]BitExpr, n)
	for i := 0; i < n; i++ {
		out[i] = [2]BitExpr{a.laneOrZero(i), b.laneOrZero(i)}
	}

	return out, nil
}

// Xor returns the pointwise XOR of v and o, zero-extending the shorter
// operand; the result has length max(v.Len(), o.Len()).
func (v BitVec) Xor(o BitVec) (BitVec, error) {
	zipped, err := zipLanes(v, o)
	if err != nil {
		return BitVec{}, err
	}

	lanes := make([]BitExpr, len(zipped))
	for i, pair := range zipped {
		l, err := pair[0].Xor(pair[1])
		if err != nil {
			return BitVec{}, err
		}

		lanes[i] = l
	}

	return BitVec{sys: v.sys, lanes: lanes}, nil
}

// Not returns the per-lane complement of v.
func (v BitVec) Not() BitVec {
	lanes := make([]BitExpr, len(v.lanes))
	for i, l := range v.lanes {
		lanes[i] = l.Not()
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// bitsOf decomposes k into its two's-complement bit pattern of width n,
// LSB first.
func bitsOf(k int64, n int) []byte {
	out := make([]byte, n)

	for i := 0; i < n; i++ {
		out[i] = byte(k & 1)
		k >>= 1
	}

	return out
}

// XorBit returns v ⊕ k, decomposing k into v.Len() bits (LSB first,
// two's-complement for negative k).
func (v BitVec) XorBit(k int64) BitVec {
	ks := bitsOf(k, len(v.lanes))
	lanes := make([]BitExpr, len(v.lanes))

	for i, l := range v.lanes {
		lanes[i] = l.XorBit(ks[i])
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// AndBit returns v & k, decomposing k into v.Len() bits (LSB first,
// two's-complement for negative k).
func (v BitVec) AndBit(k int64) BitVec {
	ks := bitsOf(k, len(v.lanes))
	lanes := make([]BitExpr, len(v.lanes))

	for i, l := range v.lanes {
		lanes[i] = l.AndBit(ks[i])
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// OrBit returns v | k, decomposing k into v.Len() bits (LSB first,
// two's-complement for negative k).
func (v BitVec) OrBit(k int64) BitVec {
	ks := bitsOf(k, len(v.lanes))
	lanes := make([]BitExpr, len(v.lanes))

	for i, l := range v.lanes {
		lanes[i] = l.OrBit(ks[i])
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// Shl shifts left by s (reduced modulo N), filling vacated low lanes
// with canonical 0.
func (v BitVec) Shl(s uint) BitVec {
	n := len(v.lanes)
	s = s % uint(n)
	lanes := make([]BitExpr, n)

	for i := 0; i < n; i++ {
		if uint(i) < s {
			lanes[i] = v.sys.zero
			continue
		}

		lanes[i] = v.lanes[uint(i)-s]
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// Shr shifts right logically by s (reduced modulo N), filling vacated
// high lanes with canonical 0.
func (v BitVec) Shr(s uint) BitVec {
	n := uint(len(v.lanes))
	s %= n
	lanes := make([]BitExpr, n)

	for i := uint(0); i < n; i++ {
		if i+s < n {
			lanes[i] = v.lanes[i+s]
			continue
		}

		lanes[i] = v.sys.zero
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// Sar shifts right arithmetically by s (reduced modulo N), filling
// vacated high lanes with the sign lane v[N-1].
func (v BitVec) Sar(s uint) BitVec {
	n := uint(len(v.lanes))
	s %= n
	sign := v.lanes[n-1]
	lanes := make([]BitExpr, n)

	for i := uint(0); i < n; i++ {
		if i+s < n {
			lanes[i] = v.lanes[i+s]
			continue
		}

		lanes[i] = sign
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// Rol rotates left by s (reduced modulo N): result[i] = v[(i-s) mod N].
func (v BitVec) Rol(s uint) BitVec {
	n := uint(len(v.lanes))
	s %= n
	lanes := make([]BitExpr, n)

	for i := uint(0); i < n; i++ {
		lanes[i] = v.lanes[(i+n-s)%n]
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// Ror rotates right by s (reduced modulo N): result[i] = v[(i+s) mod N].
func (v BitVec) Ror(s uint) BitVec {
	n := uint(len(v.lanes))
	s %= n
	lanes := make([]BitExpr, n)

	for i := uint(0); i < n; i++ {
		lanes[i] = v.lanes[(i+s)%n]
	}

	return BitVec{sys: v.sys, lanes: lanes}
}

// LShR returns v shifted right logically by s (reduced modulo v.Len()).
// It is the free-function form of v.Shr, alongside RotL/RotR for
// v.Rol/v.Ror.
func LShR(v BitVec, s uint) BitVec {
	return v.Shr(s)
}

// RotL returns v rotated left by s (reduced modulo v.Len()).
func RotL(v BitVec, s uint) BitVec {
	return v.Rol(s)
}

// RotR returns v rotated right by s (reduced modulo v.Len()).
func RotR(v BitVec, s uint) BitVec {
	return v.Ror(s)
}

// Par returns a BitVec of the same length whose lane 0 is the XOR of
// every lane of v and whose remaining lanes are canonical 0.
func Par(v BitVec) (BitVec, error) {
	acc := v.sys.zero

	for _, l := range v.lanes {
		var err error

		acc, err = acc.Xor(l)
		if err != nil {
			return BitVec{}, err
		}
	}

	lanes := make([]BitExpr, len(v.lanes))
	lanes[0] = acc

	for i := 1; i < len(lanes); i++ {
		lanes[i] = v.sys.zero
	}

	return BitVec{sys: v.sys, lanes: lanes}, nil
}

// Broadcast returns a BitVec of the same length with every lane equal
// to v[i].
func Broadcast(v BitVec, i int) (BitVec, error) {
	if i < 0 || i >= len(v.lanes) {
		return BitVec{}, fmt.Errorf("%w: lane %d out of range [0,%d)", gf2err.ErrIndexRange, i, len(v.lanes))
	}

	lanes := make([]BitExpr, len(v.lanes))
	for j := range lanes {
		lanes[j] = v.lanes[i]
	}

	return BitVec{sys: v.sys, lanes: lanes}, nil
}

// Eq asserts v = o and returns the resulting VecConstraint.
func (v BitVec) Eq(o BitVec) (VecConstraint, error) {
	if v.sys != o.sys {
		return VecConstraint{}, fmt.Errorf("%w", gf2err.ErrCrossSystem)
	}

	return VecConstraint{Lhs: v, Rhs: o}, nil
}
