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

// Package gf2 implements gf2x's symbolic algebra over GF(2): LinearSystem
// (the variable registry and global coordinate space), BitExpr (a single
// affine form), and BitVec (a fixed-width lane vector of BitExprs).
// LinearSystem, BitExpr and BitVec live in one package because each
// cached constant BitExpr holds a non-owning back-reference to the
// system that produced it, and BitVec lifts BitExpr lane-by-lane — see
// SPEC_FULL.md §4.2's note on the resulting ownership cycle. Splitting
// these into separate packages would force an import cycle Go would
// reject; the teacher keeps similarly coupled term types together (see
// pkg/ir/term in go-corset).
package gf2

import (
	"fmt"

	"github.com/gf2kit/gf2x/pkg/gf2/gf2err"
)

// maxSystemWidth bounds the total number of bits a LinearSystem may
// declare across all of its variables (the matrix collaborator's
// column-count limit, per spec.md §7 OverflowError).
const maxSystemWidth = (1 << 31) - 1

// VarSpec names one variable to declare and its bit-width, used to
// construct a LinearSystem. A slice (rather than a map) preserves
// declaration order, since Go maps have none — see DESIGN.md for this
// Open Question resolution.
type VarSpec struct {
	Name string
	Bits uint
}

// VarInfo is the immutable metadata for one declared variable: its
// name, bit-width, and the offset of its first bit in the system's
// global coordinate space. Two VarInfo values are the "same" variable
// only if they are the same pointer — a variable named "x" in two
// different LinearSystems is never identified with the other.
type VarInfo struct {
	Name   string
	Bits   uint
	Offset uint
}

// BitRef names a single bit of a declared variable.
type BitRef struct {
	Var   *VarInfo
	Index uint
}

func (r BitRef) String() string {
	if r.Var.Bits == 1 {
		return r.Var.Name
	}

	return fmt.Sprintf("%s_%d", r.Var.Name, r.Index)
}

// LinearSystem is the root context: an ordered registry of declared
// variables, each assigned a half-open range of the system's global
// bit coordinate space [0, B). A system is immutable once constructed.
type LinearSystem struct {
	vars   []*VarInfo
	byName map[string]*VarInfo
	width  uint
	zero   BitExpr
	one    BitExpr
}

// NewLinearSystem declares a LinearSystem from an order-preserving list
// of variable specifications. Every width must be at least 1; names
// must be unique within the system.
func NewLinearSystem(specs ...VarSpec) (*LinearSystem, error) {
	sys := &LinearSystem{byName: make(map[string]*VarInfo, len(specs))}

	var offset uint

	for _, spec := range specs {
		if spec.Bits == 0 {
			return nil, fmt.Errorf("%w: variable %q must have a positive bit-width", gf2err.ErrDomain, spec.Name)
		}

		if _, exists := sys.byName[spec.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate variable name %q", gf2err.ErrDomain, spec.Name)
		}

		vi := &VarInfo{Name: spec.Name, Bits: spec.Bits, Offset: offset}
		sys.vars = append(sys.vars, vi)
		sys.byName[spec.Name] = vi
		offset += spec.Bits

		if offset >= maxSystemWidth {
			return nil, fmt.Errorf("%w: total system width must be < 2^31-1", gf2err.ErrOverflow)
		}
	}

	sys.width = offset
	sys.zero = newConstBitExpr(sys, 0)
	sys.one = newConstBitExpr(sys, 1)

	return sys, nil
}

// Width returns B, the total number of bits across every declared
// variable.
func (s *LinearSystem) Width() uint {
	return s.width
}

// Variables returns every declared VarInfo, in declaration order.
func (s *LinearSystem) Variables() []*VarInfo {
	out := make([]*VarInfo, len(s.vars))
	copy(out, s.vars)

	return out
}

// Zero returns the canonical constant-0 BitExpr cached by this system.
func (s *LinearSystem) Zero() BitExpr {
	return s.zero
}

// One returns the canonical constant-1 BitExpr cached by this system.
func (s *LinearSystem) One() BitExpr {
	return s.one
}

// varByName resolves a declared variable, or reports it unknown.
func (s *LinearSystem) varByName(name string) (*VarInfo, error) {
	vi, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: no variable named %q in this system", gf2err.ErrIndexRange, name)
	}

	return vi, nil
}

// bitRef maps a global system-bit coordinate back to the declared
// variable and local bit index that owns it. Offsets increase
// monotonically in declaration order, so a linear scan over the
// (typically small) variable list suffices.
func (s *LinearSystem) bitRef(global uint) BitRef {
	for _, vi := range s.vars {
		if global < vi.Offset+vi.Bits {
			return BitRef{Var: vi, Index: global - vi.Offset}
		}
	}

	panic(fmt.Sprintf("gf2x: global bit %d is not owned by any declared variable", global))
}

// genVecFor builds the symbolic-value BitVec of a declared variable:
// lane b is the generator BitExpr for global bit vi.Offset+b.
func genVecFor(s *LinearSystem, vi *VarInfo) BitVec {
	lanes := make([]BitExpr, vi.Bits)
	for b := uint(0); b < vi.Bits; b++ {
		lanes[b] = newGenBitExpr(s, vi.Offset+b)
	}

	return BitVec{sys: s, lanes: lanes}
}

// Gens returns the symbolic-value BitVec of every declared variable, in
// declaration order.
func (s *LinearSystem) Gens() []BitVec {
	out := make([]BitVec, len(s.vars))
	for i, vi := range s.vars {
		out[i] = genVecFor(s, vi)
	}

	return out
}

// Gen returns the symbolic-value BitVec of the i-th declared variable.
func (s *LinearSystem) Gen(i int) (BitVec, error) {
	if i < 0 || i >= len(s.vars) {
		return BitVec{}, fmt.Errorf("%w: variable index %d out of range [0,%d)", gf2err.ErrIndexRange, i, len(s.vars))
	}

	return genVecFor(s, s.vars[i]), nil
}

// GenByName returns the symbolic-value BitVec of the variable declared
// under name.
func (s *LinearSystem) GenByName(name string) (BitVec, error) {
	vi, err := s.varByName(name)
	if err != nil {
		return BitVec{}, err
	}

	return genVecFor(s, vi), nil
}
