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
	"fmt"
)

// SimplifyFlatCoords reduces a point sequence stored as packed
// coordinates, point i occupying flatCoords[i*stride : (i+1)*stride].
// Only the first two columns are geometric; any further columns ride
// along untouched. It returns the retained point indices, so callers keep
// whatever per-point payload the extra columns carry:
//
//	x := flatCoords[i*stride]
//	y := flatCoords[i*stride+1]
func SimplifyFlatCoords(flatCoords []float64, thickness float64, stride int) ([]int, error) {
	if stride < 2 {
		return nil, fmt.Errorf("%w: stride %d", ErrBadShape, stride)
	}
	if len(flatCoords)%stride != 0 {
		return nil, fmt.Errorf("%w: %d values is not a multiple of stride %d",
			ErrBadShape, len(flatCoords), stride)
	}

	n := len(flatCoords) / stride
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = flatCoords[i*stride]
		ys[i] = flatCoords[i*stride+1]
	}
	return approximateXY(xs, ys, thickness)
}
