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
	"strings"

	"github.com/gf2kit/gf2x/pkg/gf2/bits"
	"github.com/gf2kit/gf2x/pkg/gf2/gf2err"
)

// BitExpr is a single affine form over GF(2): constant ⊕ (XOR of a
// subset of the system's generator bits). mask has one set bit per
// generator term present; compl is the constant term, 0 or 1.
//
// BitExpr must not be compared with ==, since mask wraps a
// pointer-backed bitset.BitSet; BitExpr has no equality method of its
// own. It is never mutated after construction — every operation below
// returns a new value.
type BitExpr struct {
	sys   *LinearSystem
	mask  bits.Set
	compl byte
}

func newConstBitExpr(sys *LinearSystem, compl byte) BitExpr {
	return BitExpr{sys: sys, mask: bits.New(sys.width), compl: compl}
}

func newGenBitExpr(sys *LinearSystem, i uint) BitExpr {
	m := bits.New(sys.width)
	m.SetBit(i, true)

	return BitExpr{sys: sys, mask: m, compl: 0}
}

// System returns the LinearSystem this BitExpr was built from.
func (e BitExpr) System() *LinearSystem {
	return e.sys
}

// IsConstant reports whether e reduces to a bare 0 or 1, independent of
// every variable.
func (e BitExpr) IsConstant() bool {
	return e.mask.IsZero()
}

func (e BitExpr) isAffineZero() bool {
	return e.IsConstant() && e.compl == 0
}

func (e BitExpr) isAffineOne() bool {
	return e.IsConstant() && e.compl == 1
}

func (e BitExpr) mustSameSystem(o BitExpr) error {
	if e.sys != o.sys {
		return fmt.Errorf("%w", gf2err.ErrCrossSystem)
	}

	return nil
}

// Xor returns e ⊕ o.
func (e BitExpr) Xor(o BitExpr) (BitExpr, error) {
	if err := e.mustSameSystem(o); err != nil {
		return BitExpr{}, err
	}

	return BitExpr{sys: e.sys, mask: bits.XorNew(e.mask, o.mask), compl: e.compl ^ o.compl}, nil
}

// XorBit returns e ⊕ k for a literal bit k (0 or 1).
func (e BitExpr) XorBit(k byte) BitExpr {
	return BitExpr{sys: e.sys, mask: e.mask.Clone(), compl: e.compl ^ (k & 1)}
}

// Not returns ¬e, i.e. e ⊕ 1.
func (e BitExpr) Not() BitExpr {
	return e.XorBit(1)
}

// And returns e ∧ o. AND of two non-constant affine forms is not
// itself affine, so at least one operand must reduce to a constant.
func (e BitExpr) And(o BitExpr) (BitExpr, error) {
	if err := e.mustSameSystem(o); err != nil {
		return BitExpr{}, err
	}

	switch {
	case o.IsConstant():
		return e.AndBit(o.compl), nil
	case e.IsConstant():
		return o.AndBit(e.compl), nil
	default:
		return BitExpr{}, fmt.Errorf("%w: AND of two non-constant BitExprs is not affine", gf2err.ErrDomain)
	}
}

// AndBit returns e ∧ k for a literal bit k: e when k=1, the system's
// canonical zero when k=0.
func (e BitExpr) AndBit(k byte) BitExpr {
	if k&1 == 1 {
		return e
	}

	return e.sys.zero
}

// Or returns e ∨ o, subject to the same affine-domain restriction as
// And (via De Morgan: a∨b = ¬(¬a∧¬b)).
func (e BitExpr) Or(o BitExpr) (BitExpr, error) {
	if err := e.mustSameSystem(o); err != nil {
		return BitExpr{}, err
	}

	switch {
	case o.IsConstant():
		return e.OrBit(o.compl), nil
	case e.IsConstant():
		return o.OrBit(e.compl), nil
	default:
		return BitExpr{}, fmt.Errorf("%w: OR of two non-constant BitExprs is not affine", gf2err.ErrDomain)
	}
}

// OrBit returns e ∨ k for a literal bit k: the system's canonical one
// when k=1, e when k=0.
func (e BitExpr) OrBit(k byte) BitExpr {
	if k&1 == 1 {
		return e.sys.one
	}

	return e
}

// Eq asserts e = o and returns the resulting Constraint.
func (e BitExpr) Eq(o BitExpr) (Constraint, error) {
	if err := e.mustSameSystem(o); err != nil {
		return Constraint{}, err
	}

	return Constraint{Lhs: e, Rhs: o}, nil
}

// Terms returns the BitRefs of every generator bit present in e's mask,
// in ascending global-coordinate order (declaration order, then
// low-to-high local bit within a variable).
func (e BitExpr) Terms() []BitRef {
	idx := e.mask.Bits()
	out := make([]BitRef, len(idx))

	for i, g := range idx {
		out[i] = e.sys.bitRef(g)
	}

	return out
}

// Constant reports the constant term of e (0 or 1); meaningful on its
// own only when IsConstant() is true.
func (e BitExpr) Constant() byte {
	return e.compl
}

// String renders e's canonical form: "0"/"1" if constant, otherwise its
// terms joined by " ^ ", followed by " ^ 1" when the constant term is 1.
func (e BitExpr) String() string {
	if e.IsConstant() {
		if e.compl == 1 {
			return "1"
		}

		return "0"
	}

	terms := e.Terms()
	parts := make([]string, 0, len(terms)+1)

	for _, t := range terms {
		parts = append(parts, t.String())
	}

	if e.compl == 1 {
		parts = append(parts, "1")
	}

	return strings.Join(parts, " ^ ")
}
