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
	"testing"
)

// Sizes straddle the vector width so both the full-lane body and the
// masked tail paths run.
var kernelSizes = []int{0, 1, 3, 7, 8, 16, 33, 100}

func testCoords(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = math.Sin(float64(i)) * 50
		ys[i] = math.Cos(float64(3*i)) * 20
	}
	return xs, ys
}

func TestBaseChordCrosses(t *testing.T) {
	const ox, oy, cx, cy = 2.0, -1.0, 30.0, 3.0

	for _, n := range kernelSizes {
		xs, ys := testCoords(n)
		got := make([]float64, n)
		BaseChordCrosses(ox, oy, cx, cy, xs, ys, got)

		for i := 0; i < n; i++ {
			want := cx*(ys[i]-oy) - cy*(xs[i]-ox)
			if math.Abs(got[i]-want) > 1e-9 {
				t.Fatalf("n=%d: cross[%d] = %v, want %v", n, i, got[i], want)
			}
		}
	}
}

func TestBaseSumCrosses(t *testing.T) {
	for _, n := range kernelSizes {
		ax, ay := testCoords(n)
		by, bx := testCoords(n) // swapped on purpose for asymmetry

		got := BaseSumCrosses(ax, ay, bx, by)

		want := 0.0
		for i := 0; i < n; i++ {
			want += ax[i]*by[i] - ay[i]*bx[i]
		}
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("n=%d: sum = %v, want %v", n, got, want)
		}
	}
}

func TestBaseSquaredDistances(t *testing.T) {
	const tx, ty = 5.0, -7.0

	for _, n := range kernelSizes {
		xs, ys := testCoords(n)
		got := make([]float64, n)
		BaseSquaredDistances(tx, ty, xs, ys, got)

		for i := 0; i < n; i++ {
			dx, dy := xs[i]-tx, ys[i]-ty
			want := dx*dx + dy*dy
			if math.Abs(got[i]-want) > 1e-9 {
				t.Fatalf("n=%d: distSq[%d] = %v, want %v", n, i, got[i], want)
			}
		}
	}
}

func TestBaseChordCrossesFloat32(t *testing.T) {
	xs := []float32{1, 2, 3, 4, 5, 6, 7}
	ys := []float32{2, 1, 0, -1, 4, 2, 2}
	got := make([]float32, len(xs))
	BaseChordCrosses[float32](0, 0, 10, 0, xs, ys, got)

	for i := range xs {
		want := 10 * ys[i]
		if math.Abs(float64(got[i]-want)) > 1e-4 {
			t.Fatalf("cross[%d] = %v, want %v", i, got[i], want)
		}
	}
}
