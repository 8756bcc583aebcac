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

func TestAreaBasicShapes(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point[float64]
		want float64
	}{
		{
			name: "unit square ccw",
			pts:  []Point[float64]{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			want: 1,
		},
		{
			name: "unit square cw",
			pts:  []Point[float64]{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
			want: 1,
		},
		{
			name: "right triangle",
			pts:  []Point[float64]{{0, 0}, {4, 0}, {0, 3}},
			want: 6,
		},
		{
			name: "two points",
			pts:  []Point[float64]{{0, 0}, {4, 0}},
			want: 0,
		},
		{
			name: "empty",
			pts:  nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		if got := Area(tt.pts); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Area = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAreaIntegerSquare(t *testing.T) {
	pts := []Point[int]{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if got := Area(pts); got != 100 {
		t.Errorf("Area = %v, want 100", got)
	}
}

func TestAreaSampledCircle(t *testing.T) {
	// A dense polygonal circle approaches pi*r^2.
	const radius = 10.0
	pts := CirclePoints(Pt(40.0, 100.0), radius, 5000)
	want := math.Pi * radius * radius
	if got := Area(pts); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("Area = %v, want within 0.1%% of %v", got, want)
	}
}
