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

// Constraint asserts Lhs = Rhs for two scalar BitExprs over the same
// LinearSystem. It carries no solving logic of its own; Zero reduces it
// to the must-be-zero form Lhs ⊕ Rhs that the solver takes as input.
type Constraint struct {
	Lhs, Rhs BitExpr
}

// Zero rewrites the constraint as a single affine form that must equal
// zero: Lhs ⊕ Rhs.
func (c Constraint) Zero() (BitExpr, error) {
	return c.Lhs.Xor(c.Rhs)
}

// VecConstraint asserts Lhs = Rhs for two BitVecs over the same
// LinearSystem; the lengths may differ, the shorter side being
// zero-extended.
type VecConstraint struct {
	Lhs, Rhs BitVec
}

// Zeros expands the vector constraint into one scalar Constraint per
// lane of the longer side, comparing the shorter side's missing lanes
// against canonical 0.
func (c VecConstraint) Zeros() ([]Constraint, error) {
	zipped, err := zipLanes(c.Lhs, c.Rhs)
	if err != nil {
		return nil, err
	}

	out := make([]Constraint, len(zipped))
	for i, pair := range zipped {
		cst, err := pair[0].Eq(pair[1])
		if err != nil {
			return nil, err
		}

		out[i] = cst
	}

	return out, nil
}
