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

// Package gf2log is a minimal logrus wrapper used to report solver
// diagnostics at debug level, in the same spirit as the teacher's
// pkg/util/perfstats.go (a "Log(prefix string)" helper rather than a
// full logging abstraction). Nothing in gf2x's public API depends on
// logging; it exists purely so the solver's internals are observable.
package gf2log

import (
	log "github.com/sirupsen/logrus"

	"github.com/gf2kit/gf2x/pkg/util/math"
)

// Debugf logs a debug-level diagnostic message.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// MatrixStats logs the shape of an augmented matrix before reduction.
func MatrixStats(rows, cols uint) {
	log.Debugf("gf2x/solve: built augmented matrix %d x %d", rows, cols+1)
}

// EchelonStats logs the outcome of a Gaussian elimination pass.
func EchelonStats(pivots uint) {
	log.Debugf("gf2x/solve: echelonized with %d pivot rows", pivots)
}

// KernelStats logs the dimension of an extracted kernel basis.
func KernelStats(dimension uint) {
	if dimension < 64 {
		log.Debugf("gf2x/solve: kernel dimension %d (%d models)", dimension, math.PowUint64(2, uint64(dimension)))
		return
	}

	log.Debugf("gf2x/solve: kernel dimension %d (2^%d models)", dimension, dimension)
}

// RowDensity logs the total coefficient-bit count across an augmented
// matrix's rows, given one count per row, together with the row count.
func RowDensity(popcounts ...uint64) {
	log.Debugf("gf2x/solve: %d total coefficient bits set across %d equations", math.Sum(popcounts...), len(popcounts))
}
