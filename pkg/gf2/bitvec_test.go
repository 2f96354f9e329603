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
	"testing"
)

func Test_BitVec_Xor_SelfInverse(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 4})
	n, _ := sys.GenByName("n")

	z, err := n.Xor(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < z.Len(); i++ {
		if !z.Lane(i).isAffineZero() {
			t.Fatalf("lane %d should be constant 0, got %v", i, z.Lane(i))
		}
	}
}

func Test_BitVec_Xor_ZeroExtends(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "short", Bits: 2}, VarSpec{Name: "long", Bits: 4})
	short, _ := sys.GenByName("short")
	long, _ := sys.GenByName("long")

	sum, err := short.Xor(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Len() != 4 {
		t.Fatalf("expected result length 4, got %d", sum.Len())
	}
}

func Test_BitVec_Rol_Ror_Inverse(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 8})
	n, _ := sys.GenByName("n")

	rolled := n.Rol(3)
	back := rolled.Ror(3)

	for i := 0; i < n.Len(); i++ {
		if back.Lane(i).String() != n.Lane(i).String() {
			t.Fatalf("ror(rol(n,3),3) should equal n at lane %d", i)
		}
	}
}

func Test_BitVec_Shl_FillsZero(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 4})
	n, _ := sys.GenByName("n")

	shifted := n.Shl(2)
	if !shifted.Lane(0).isAffineZero() || !shifted.Lane(1).isAffineZero() {
		t.Fatalf("low lanes should be canonical 0 after SHL")
	}

	if shifted.Lane(2).String() != n.Lane(0).String() {
		t.Fatalf("lane 2 should carry the original lane 0")
	}
}

func Test_BitVec_Sar_FillsSignLane(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 4})
	n, _ := sys.GenByName("n")

	shifted := n.Sar(3)
	for i := 1; i < shifted.Len(); i++ {
		if shifted.Lane(i).String() != n.Lane(3).String() {
			t.Fatalf("lane %d should carry the sign lane after SAR", i)
		}
	}
}

func Test_BitVec_XorBit_Decomposition(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 4})
	n, _ := sys.GenByName("n")

	got := n.XorBit(0b0101)

	if got.Lane(0).String() == n.Lane(0).String() {
		t.Errorf("lane 0 should have flipped")
	}

	if got.Lane(1).String() != n.Lane(1).String() {
		t.Errorf("lane 1 should be unchanged")
	}
}

func Test_Par_SingleLowBit(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 3})
	n, _ := sys.GenByName("n")

	p, err := Par(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < p.Len(); i++ {
		if !p.Lane(i).isAffineZero() {
			t.Fatalf("lane %d of Par should be constant 0", i)
		}
	}
}

func Test_Broadcast_AllLanesEqual(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 3})
	n, _ := sys.GenByName("n")

	b, err := Broadcast(n, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < b.Len(); i++ {
		if b.Lane(i).String() != n.Lane(1).String() {
			t.Fatalf("lane %d should equal source lane 1", i)
		}
	}
}

func Test_Broadcast_OutOfRange(t *testing.T) {
	sys, _ := NewLinearSystem(VarSpec{Name: "n", Bits: 3})
	n, _ := sys.GenByName("n")

	if _, err := Broadcast(n, 9); err == nil {
		t.Fatalf("expected an error for an out-of-range lane")
	}
}
