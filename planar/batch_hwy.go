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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch chord evaluation (Structure of Arrays)
// Simplification scans every interior point of a segment against the same
// chord, so the cross products are computed in a batch over de-interleaved
// coordinate slices rather than point by point.

// BaseChordCrosses computes, for each input point (xs[i], ys[i]), the 2-D
// cross product of the chord vector (cx, cy) with the offset of the point
// from the chord origin (ox, oy):
//
//	out[i] = cx*(ys[i]-oy) - cy*(xs[i]-ox)
//
// Dividing out[i] by the chord length gives the signed perpendicular
// distance of point i from the chord.
func BaseChordCrosses[T hwy.Floats](ox, oy, cx, cy T, xs, ys, out []T) {
	size := min(len(xs), len(ys), len(out))

	vOx := hwy.Set(ox)
	vOy := hwy.Set(oy)
	vCx := hwy.Set(cx)
	vCy := hwy.Set(cy)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])

			// V = point - origin
			dx := hwy.Sub(vx, vOx)
			dy := hwy.Sub(vy, vOy)

			// cross = cx*dy - cy*dx
			cross := hwy.Sub(hwy.Mul(vCx, dy), hwy.Mul(vCy, dx))

			hwy.Store(cross, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			dx := hwy.Sub(vx, vOx)
			dy := hwy.Sub(vy, vOy)

			cross := hwy.Sub(hwy.Mul(vCx, dy), hwy.Mul(vCy, dx))

			hwy.MaskStore(mask, cross, out[offset:])
		},
	)
}

// BaseSumCrosses computes the sum of pairwise 2-D cross products
// Σ ax[i]*by[i] - ay[i]*bx[i] over two point sets in SoA layout. With
// a = vertices and b = successor vertices this is the shoelace sum, twice
// the signed area of the polygon.
func BaseSumCrosses[T hwy.Floats](ax, ay, bx, by []T) T {
	size := min(len(ax), len(ay), len(bx), len(by))

	vSum := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])

			cross := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			vSum = hwy.Add(vSum, cross)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])

			// Masked lanes load as zero and contribute nothing to the sum.
			cross := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			vSum = hwy.Add(vSum, cross)
		},
	)

	return hwy.ReduceSum(vSum)
}

// BaseSquaredDistances computes the squared Euclidean distance of each
// point (xs[i], ys[i]) from the target (tx, ty). Used for the degenerate
// chord case where both chord endpoints coincide.
func BaseSquaredDistances[T hwy.Floats](tx, ty T, xs, ys, out []T) {
	size := min(len(xs), len(ys), len(out))

	vTx := hwy.Set(tx)
	vTy := hwy.Set(ty)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)

			distSq := hwy.FMA(dx, dx, hwy.Mul(dy, dy))
			hwy.Store(distSq, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)

			distSq := hwy.FMA(dx, dx, hwy.Mul(dy, dy))
			hwy.MaskStore(mask, distSq, out[offset:])
		},
	)
}
