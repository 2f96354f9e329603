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

// Package gf2err holds the sentinel errors shared across gf2x's
// packages, so callers can use errors.Is regardless of which package
// raised the error.
package gf2err

import "errors"

// ErrCrossSystem is returned when an operation mixes BitExprs, BitVecs
// or Constraints drawn from two different LinearSystems.
var ErrCrossSystem = errors.New("gf2x: operands belong to different linear systems")

// ErrDomain is returned when an operand or argument is outside the
// domain an operation accepts: AND/OR of two non-constant BitExprs, a
// non-positive variable width, a non-positive BitVec length, or an
// empty constraint list. Shift amounts are unsigned, so no shift
// returns it.
var ErrDomain = errors.New("gf2x: value outside operation's domain")

// ErrIndexRange is returned when a BitVec, BitSet or variable-bit index
// falls outside its valid range.
var ErrIndexRange = errors.New("gf2x: index out of range")

// ErrOverflow is returned when the equation count or total system
// width exceeds the bounds the matrix collaborator can represent
// (2^31 equations, or 2^31-1 bits of system width).
var ErrOverflow = errors.New("gf2x: exceeds matrix size limits")

// ErrInfeasible is returned when a consistent-looking constraint list
// reduces to a row of the form 0 = 1: the system has no solution.
var ErrInfeasible = errors.New("gf2x: no solution")
