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

package planar

import (
	"math"
)

// Area returns the absolute area of the polygon whose boundary is the
// given vertex sequence, closed implicitly from the last vertex back to
// the first. Fewer than three vertices enclose no area.
//
// The shoelace sum runs over the batch kernel; the single wrap-around
// term is added separately.
func Area[T Coord](pts []Point[T]) float64 {
	if len(pts) < 3 {
		return 0
	}

	xs, ys := SplitCoords(pts)
	n := len(pts)

	sum := BaseSumCrosses(xs[:n-1], ys[:n-1], xs[1:], ys[1:])
	sum += xs[n-1]*ys[0] - ys[n-1]*xs[0]

	return math.Abs(sum) / 2
}
