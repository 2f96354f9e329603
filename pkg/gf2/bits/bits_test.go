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
package bits

import "testing"

func Test_Set_TestSetBit(t *testing.T) {
	s := New(128)

	if s.Test(70) {
		t.Fatalf("expected bit 70 to be clear")
	}

	s.SetBit(70, true)

	if !s.Test(70) {
		t.Fatalf("expected bit 70 to be set")
	}

	s.SetBit(70, false)

	if s.Test(70) {
		t.Fatalf("expected bit 70 to be clear again")
	}
}

func Test_Set_Popcount(t *testing.T) {
	s := New(64)

	for _, i := range []uint{0, 5, 63} {
		s.SetBit(i, true)
	}

	if n := s.Popcount(); n != 3 {
		t.Errorf("expected popcount 3, got %d", n)
	}
}

func Test_Set_XorNew_SelfInverse(t *testing.T) {
	a := New(65)
	a.SetBit(0, true)
	a.SetBit(64, true)

	z := XorNew(a, a)

	if !z.IsZero() {
		t.Errorf("a xor a should be all-zero, got %v", z.Bits())
	}
}

func Test_Set_XorInplace(t *testing.T) {
	a := New(32)
	b := New(32)
	a.SetBit(1, true)
	b.SetBit(1, true)
	b.SetBit(2, true)

	a.XorInplace(b)

	if a.Test(1) {
		t.Errorf("bit 1 should have cancelled")
	}

	if !a.Test(2) {
		t.Errorf("bit 2 should be set")
	}
}

func Test_Set_Bits_Ordered(t *testing.T) {
	s := New(16)
	for _, i := range []uint{3, 1, 9} {
		s.SetBit(i, true)
	}

	got := s.Bits()
	want := []uint{1, 3, 9}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func Test_Set_WidthMismatch_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on width mismatch")
		}
	}()

	a := New(8)
	b := New(16)

	a.XorInplace(b)
}

func Test_Set_Clone_Independent(t *testing.T) {
	a := New(8)
	a.SetBit(3, true)

	b := a.Clone()
	b.SetBit(3, false)

	if !a.Test(3) {
		t.Errorf("clone mutation should not affect original")
	}
}
