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

import "testing"

func Test_VecConstraint_Zeros_PadsShorterSide(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "short", Bits: 2}, VarSpec{Name: "long", Bits: 4})
	short, _ := sys.GenByName("short")
	long, _ := sys.GenByName("long")

	vc, err := short.Eq(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zeros, err := vc.Zeros()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(zeros) != 4 {
		t.Fatalf("expected 4 flattened constraints, got %d", len(zeros))
	}
}

func Test_Constraint_Zero_IsXor(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "a", Bits: 1}, VarSpec{Name: "b", Bits: 1})
	a, _ := sys.Gen(0)
	b, _ := sys.Gen(1)

	c, err := a.Lane(0).Eq(b.Lane(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	z, err := c.Zero()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := a.Lane(0).Xor(b.Lane(0))
	if z.String() != want.String() {
		t.Fatalf("expected constraint.Zero() to equal Lhs xor Rhs")
	}
}
