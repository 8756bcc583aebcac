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
	"math"

	"github.com/dpdetect/thickpoly/planar"
)

// extremum is one of the two extreme interior points of a segment: the
// point with the largest perpendicular deviation on one side of the
// chord. ok is false when no interior point lies on that side.
type extremum struct {
	index int     // index into the full point sequence
	mag   float64 // absolute perpendicular distance from the chord
	ok    bool
}

// evaluator computes chord deviations over the de-interleaved float64
// mirror of the point sequence. The scratch buffer is reused across
// segments so a whole reduction performs no per-segment allocation.
type evaluator struct {
	xs, ys  []float64
	scratch []float64
}

func newEvaluator(xs, ys []float64) *evaluator {
	return &evaluator{
		xs:      xs,
		ys:      ys,
		scratch: make([]float64, len(xs)),
	}
}

// chordExtremes evaluates every interior point of the segment [start, end]
// against the chord joining its endpoints and returns the extreme point on
// each side: pos has the largest positive signed distance, neg the largest
// magnitude among negative distances. Either may be absent.
//
// Ties in magnitude resolve to the lowest index. This is a deliberate,
// deterministic policy; any tied point would be an equally valid choice.
func (e *evaluator) chordExtremes(start, end int) (pos, neg extremum) {
	interior := e.scratch[:end-start-1]
	ox, oy := e.xs[start], e.ys[start]
	cx, cy := e.xs[end]-ox, e.ys[end]-oy

	if cx == 0 && cy == 0 {
		// Zero-length chord: no direction to measure against, so fall
		// back to plain Euclidean distance from the shared endpoint.
		// Distances are non-negative, so only the positive side exists.
		planar.BaseSquaredDistances(ox, oy, e.xs[start+1:end], e.ys[start+1:end], interior)
		best, bestIdx := 0.0, -1
		for i, d := range interior {
			if d > best {
				best, bestIdx = d, i
			}
		}
		if bestIdx < 0 {
			return extremum{}, extremum{}
		}
		return extremum{index: start + 1 + bestIdx, mag: math.Sqrt(best), ok: true}, extremum{}
	}

	planar.BaseChordCrosses(ox, oy, cx, cy, e.xs[start+1:end], e.ys[start+1:end], interior)

	// The cross products order the same way as the signed distances
	// (they differ by the constant chord length), so the extremes are
	// found before dividing and only the two winners get divided.
	maxCross, minCross := 0.0, 0.0
	maxIdx, minIdx := -1, -1
	for i, c := range interior {
		if c > maxCross {
			maxCross, maxIdx = c, i
		}
		if c < minCross {
			minCross, minIdx = c, i
		}
	}

	clen := math.Hypot(cx, cy)
	if maxIdx >= 0 {
		pos = extremum{index: start + 1 + maxIdx, mag: maxCross / clen, ok: true}
	}
	if minIdx >= 0 {
		neg = extremum{index: start + 1 + minIdx, mag: -minCross / clen, ok: true}
	}
	return pos, neg
}
