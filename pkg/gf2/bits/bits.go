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

// Package bits provides a fixed-width packed bit vector used throughout
// gf2x to represent the variable-support mask of an affine form over
// GF(2).
//
// The underlying storage is github.com/bits-and-blooms/bitset, which
// already packs bits into 64-bit words (bit i at word i/64, position
// i%64) and computes popcount via the hardware instruction through
// math/bits.OnesCount64. Set adds the fixed-width discipline spec'd
// for a GF(2) mask: every binary operation requires both operands to
// share the same width, which the upstream (auto-growing) type does
// not enforce on its own.
package bits

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Set is a fixed-length packed bit vector of a known width. The zero
// value is not usable; construct one with New.
type Set struct {
	words *bitset.BitSet
	width uint
}

// New constructs an all-zero Set of the given width.
func New(width uint) Set {
	return Set{words: bitset.New(width), width: width}
}

// Width returns the fixed bit-width of this set.
func (s Set) Width() uint {
	return s.width
}

// Test returns the value of bit i.
func (s Set) Test(i uint) bool {
	return s.words.Test(i)
}

// SetBit sets bit i to v.
func (s Set) SetBit(i uint, v bool) {
	s.words.SetTo(i, v)
}

// XorInplace XORs other into this set, mutating it. Both sets must
// have equal width.
func (s Set) XorInplace(other Set) {
	mustEqualWidth(s, other)
	s.words.InPlaceSymmetricDifference(other.words)
}

// XorNew returns a new Set holding a XOR b, without mutating either
// operand. Both sets must have equal width.
func XorNew(a, b Set) Set {
	mustEqualWidth(a, b)
	return Set{words: a.words.SymmetricDifference(b.words), width: a.width}
}

// Popcount returns the number of set bits.
func (s Set) Popcount() uint {
	return s.words.Count()
}

// IsZero returns true iff no bit is set.
func (s Set) IsZero() bool {
	return s.words.None()
}

// Equal reports whether two equal-width sets hold the same bits.
func (s Set) Equal(other Set) bool {
	mustEqualWidth(s, other)
	return s.words.Equal(other.words)
}

// Clone returns an independent copy of this set.
func (s Set) Clone() Set {
	return Set{words: s.words.Clone(), width: s.width}
}

// Bits returns the indices of every set bit, in ascending order. This
// underlies BitExpr.Terms().
func (s Set) Bits() []uint {
	result := make([]uint, 0, s.words.Count())
	for i, ok := s.words.NextSet(0); ok; i, ok = s.words.NextSet(i + 1) {
		result = append(result, i)
	}

	return result
}

func mustEqualWidth(a, b Set) {
	if a.width != b.width {
		panic(fmt.Sprintf("gf2x/bits: width mismatch (%d vs %d)", a.width, b.width))
	}
}
