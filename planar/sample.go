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

// CirclePoints samples the boundary of a circle as a dense closed
// polyline, ordered as a single traversal: the upper semicircle from
// x = -radius to x = +radius with n samples evenly spaced in x, then the
// lower semicircle back, skipping the two seam points so no vertex is
// duplicated. The result has 2n-2 points for n >= 2.
//
// Sampling evenly in x (not in arc length) concentrates vertices near the
// left and right extremes, which is deliberate: it exercises simplifiers
// with highly non-uniform input spacing.
func CirclePoints(center Point[float64], radius float64, n int) []Point[float64] {
	if n < 2 {
		return nil
	}

	pts := make([]Point[float64], 0, 2*n-2)
	step := 2 * radius / float64(n-1)

	for i := 0; i < n; i++ {
		x := -radius + float64(i)*step
		pts = append(pts, Point[float64]{
			X: center.X + x,
			Y: center.Y + chordHeight(radius, x),
		})
	}
	for i := n - 2; i >= 1; i-- {
		x := -radius + float64(i)*step
		pts = append(pts, Point[float64]{
			X: center.X + x,
			Y: center.Y - chordHeight(radius, x),
		})
	}
	return pts
}

// chordHeight returns sqrt(r^2 - x^2), clamped so accumulated rounding in
// the x sweep cannot produce a NaN at the extremes.
func chordHeight(r, x float64) float64 {
	d := r*r - x*x
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}
