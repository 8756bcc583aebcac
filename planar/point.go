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

// Package planar provides 2-D geometric primitives for polyline and
// polygon processing: a coordinate-type-generic point, chord distance
// math, polygon area, and synthetic shape sampling.
//
// Coordinates are generic over Coord so that sequences of integer points
// (e.g. pixel contours from edge extraction) keep their element type
// through simplification. All derived measures (distances, areas) are
// float64 regardless of the coordinate type.
package planar

import (
	"math"
)

// Coord is the set of coordinate element types supported by Point.
type Coord interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a point or vector in the Euclidean plane.
type Point[T Coord] struct {
	X, Y T
}

// Pt returns a Point with the given coordinates.
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Sub returns the vector difference p - q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product p·q, computed in float64.
func (p Point[T]) Dot(q Point[T]) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

// Cross returns the 2-D cross product (determinant) p×q, computed in
// float64. Its sign tells which side of p the vector q lies on.
func (p Point[T]) Cross(q Point[T]) float64 {
	return float64(p.X)*float64(q.Y) - float64(p.Y)*float64(q.X)
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point[T]) Norm() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point[T]) DistanceTo(q Point[T]) float64 {
	return math.Hypot(float64(p.X)-float64(q.X), float64(p.Y)-float64(q.Y))
}

// Chord is the straight segment joining two points A and B. It measures
// perpendicular deviation of other points from the infinite line through
// A and B using the cross-product form, which stays exact for purely
// horizontal and purely vertical chords (no slope/intercept is ever
// computed).
type Chord[T Coord] struct {
	A, B Point[T]
}

// Length returns |B - A|.
func (c Chord[T]) Length() float64 {
	return c.A.DistanceTo(c.B)
}

// IsDegenerate reports whether A and B coincide, leaving no direction to
// measure perpendicular distance against.
func (c Chord[T]) IsDegenerate() bool {
	return c.A.X == c.B.X && c.A.Y == c.B.Y
}

// SignedDistance returns the signed perpendicular distance of p from the
// line through the chord. Positive means p lies to the left of the
// directed chord A->B. For a degenerate chord the plain Euclidean
// distance from the shared endpoint is returned, which is never negative.
func (c Chord[T]) SignedDistance(p Point[T]) float64 {
	if c.IsDegenerate() {
		return c.A.DistanceTo(p)
	}
	return c.B.Sub(c.A).Cross(p.Sub(c.A)) / c.Length()
}

// SplitCoords de-interleaves pts into separate float64 X and Y slices
// (Structure of Arrays layout), the form the batch kernels consume.
func SplitCoords[T Coord](pts []Point[T]) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}
	return xs, ys
}
