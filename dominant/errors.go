// Copyright 2025 The thickpoly Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dominant

import (
	"errors"
	"fmt"
	"math"
)

// Input validation failures. All are detected before any traversal
// begins; no partial result is ever produced alongside an error.
var (
	// ErrNegativeThickness reports a tolerance below zero.
	ErrNegativeThickness = errors.New("dominant: thickness must be non-negative")

	// ErrNonFiniteCoord reports a NaN or infinite coordinate in the input.
	ErrNonFiniteCoord = errors.New("dominant: input contains a non-finite coordinate")

	// ErrBadShape reports flat coordinates that do not form an Nx2-or-wider
	// point matrix.
	ErrBadShape = errors.New("dominant: flat coordinates do not form two columns")
)

// checkCoords verifies that every de-interleaved coordinate is finite.
func checkCoords(xs, ys []float64) error {
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return fmt.Errorf("%w: point %d = (%v, %v)", ErrNonFiniteCoord, i, xs[i], ys[i])
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
