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

// Iter lazily enumerates the full affine solution set
// { x ⊕ Σ_{j∈J} kernel[j] : J ⊆ {0,...,K-1} } one model at a time,
// mirroring xorsat's solveiter_next (original_source/xorsat): a
// *big.Int counter runs from 0 to 2^K (the spec explicitly calls for
// an unbounded counter rather than a machine word, since K can exceed
// 63), and bit j of the counter selects whether kernel[j] is XORed into
// the current coset member.
type Iter struct {
	sys     *gf2.LinearSystem
	x       bits.Set
	kernel  []bits.Set
	counter *big.Int
	limit   *big.Int
}

func newIter(sys *gf2.LinearSystem, x bits.Set, kernel []bits.Set) *Iter {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(len(kernel)))

	return &Iter{sys: sys, x: x, kernel: kernel, counter: new(big.Int), limit: limit}
}

// Exhausted reports whether every model in the coset has already been
// emitted.
func (it *Iter) Exhausted() bool {
	return it.counter.Cmp(it.limit) >= 0
}

// KernelDim returns K, the dimension of the kernel basis (so callers
// can anticipate 2^K without exhausting the iterator).
func (it *Iter) KernelDim() int {
	return len(it.kernel)
}

// Next decodes and returns the next model in the coset, advancing the
// counter. It returns false once the iterator is exhausted.
func (it *Iter) Next() (Model, bool) {
	if it.Exhausted() {
		return Model{}, false
	}

	y := it.x.Clone()

	for j := range it.kernel {
		if it.counter.Bit(j) == 1 {
			y.XorInplace(it.kernel[j])
		}
	}

	it.counter.Add(it.counter, big.NewInt(1))

	return decode(it.sys, y), true
}
