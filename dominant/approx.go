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

// Package dominant reduces the vertex count of an ordered 2-D point
// sequence while bounding how far the simplified shape may deviate from
// the original, following the thick-edge polygonal approximation of
// Saha et al., "A Computer Vision Framework for Detecting Dominant Points
// on Contour of Image-Object Through Thick-Edge Polygonal Approximation".
//
// Given a chord between two points of the sequence, the reducer either
// discards all interior points (every deviation is within the thickness
// tolerance) or keeps the one or two extreme interior points, one per
// side of the chord, and re-examines the resulting sub-segments. The
// output is always an order-preserving subsequence of the input that
// retains the first and last points, with the input's coordinate type
// preserved.
//
// A deviation must strictly exceed the thickness to force a split; a
// deviation exactly equal to the thickness collapses.
package dominant

import (
	"github.com/dpdetect/thickpoly/planar"
)

// Approximate returns the dominant points of pts: an order-preserving
// subsequence whose chords deviate from the discarded points by no more
// than thickness. Sequences of fewer than two points are returned as-is.
// The input is never mutated.
func Approximate[T planar.Coord](pts []planar.Point[T], thickness float64) ([]planar.Point[T], error) {
	keep, err := ApproximateIndices(pts, thickness)
	if err != nil {
		return nil, err
	}
	out := make([]planar.Point[T], len(keep))
	for i, j := range keep {
		out[i] = pts[j]
	}
	return out, nil
}

// ApproximateIndices is Approximate returning the retained original
// indices instead of the points. The result is strictly increasing and,
// for len(pts) >= 2, always starts at 0 and ends at len(pts)-1.
func ApproximateIndices[T planar.Coord](pts []planar.Point[T], thickness float64) ([]int, error) {
	xs, ys := planar.SplitCoords(pts)
	return approximateXY(xs, ys, thickness)
}

// approximateXY is the core reducer over de-interleaved coordinates.
//
// It walks an explicit stack of [start, end] index pairs rather than
// recursing, so adversarial zigzag input (worst case one split per
// interior point) cannot grow the goroutine stack. Splitting order does
// not affect the result: retained indices land in a keep-mask over the
// original sequence, and the mask scan restores ascending order.
func approximateXY(xs, ys []float64, thickness float64) ([]int, error) {
	if thickness < 0 {
		return nil, ErrNegativeThickness
	}
	if err := checkCoords(xs, ys); err != nil {
		return nil, err
	}

	n := len(xs)
	if n == 0 {
		return []int{}, nil
	}
	if n == 1 {
		return []int{0}, nil
	}

	mask := make([]byte, n)
	mask[0] = 1
	mask[n-1] = 1
	kept := 2

	ev := newEvaluator(xs, ys)

	// Segment endpoints are marked before the segment is pushed, so every
	// index on the stack is already in the mask and boundary indices
	// shared between sub-segments cannot duplicate.
	stack := make([]int, 0, 32)
	stack = append(stack, 0, n-1)

	for len(stack) > 0 {
		l := len(stack)
		start, end := stack[l-2], stack[l-1]
		stack = stack[:l-2]

		if end-start <= 1 {
			continue
		}

		pos, neg := ev.chordExtremes(start, end)
		posOver := pos.ok && pos.mag > thickness
		negOver := neg.ok && neg.mag > thickness

		switch {
		case posOver && negOver:
			// Order the two split points along the segment, not by side.
			e1, e2 := pos.index, neg.index
			if e2 < e1 {
				e1, e2 = e2, e1
			}
			mask[e1] = 1
			mask[e2] = 1
			kept += 2
			stack = append(stack, start, e1, e1, e2, e2, end)

		case posOver:
			mask[pos.index] = 1
			kept++
			stack = append(stack, start, pos.index, pos.index, end)

		case negOver:
			mask[neg.index] = 1
			kept++
			stack = append(stack, start, neg.index, neg.index, end)

		default:
			// Thin enough: the chord stands in for all interior points.
		}
	}

	keep := make([]int, 0, kept)
	for i, m := range mask {
		if m == 1 {
			keep = append(keep, i)
		}
	}
	return keep, nil
}
