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

package solve

import (
	"math/big"

	"github.com/gf2kit/gf2x/pkg/gf2"
	"github.com/gf2kit/gf2x/pkg/gf2/bits"
)

// Model maps each declared variable name to its solved integer value,
// preserving declaration order. Variables with bits<=64 decode to a
// native uint64 (Value); every variable also decodes to a *big.Int
// (BigInt) for widths beyond uint64's range.
type Model struct {
	names  []string
	values map[string]uint64
	big    map[string]*big.Int
}

// Names returns the declared variable names in declaration order.
func (m Model) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Value returns the uint64-truncated value of the named variable. It
// is exact whenever the variable's bit-width is <= 64; for wider
// variables use BigInt.
func (m Model) Value(name string) uint64 {
	return m.values[name]
}

// BigInt returns the exact value of the named variable as a *big.Int.
func (m Model) BigInt(name string) *big.Int {
	return new(big.Int).Set(m.big[name])
}

// decode reads the solved bit vector x (global system coordinates) into
// a Model, one integer per declared variable: value = Σ x[offset+b]·2^b,
// lane 0 = LSB, per spec.md §4.7.
func decode(sys *gf2.LinearSystem, x bits.Set) Model {
	vars := sys.Variables()

	m := Model{
		names:  make([]string, len(vars)),
		values: make(map[string]uint64, len(vars)),
		big:    make(map[string]*big.Int, len(vars)),
	}

	for i, vi := range vars {
		m.names[i] = vi.Name

		acc := new(big.Int)
		for b := uint(0); b < vi.Bits; b++ {
			if x.Test(vi.Offset + b) {
				acc.SetBit(acc, int(b), 1)
			}
		}

		m.big[vi.Name] = acc
		m.values[vi.Name] = acc.Uint64()
	}

	return m
}
