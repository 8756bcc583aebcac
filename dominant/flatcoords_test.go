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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimplifyFlatCoords(t *testing.T) {
	// The thin-curve fixture, packed two columns per point.
	flat := []float64{20, 20, 30, 15, 40, 25, 50, 23}
	got, err := SimplifyFlatCoords(flat, 40, 2)
	if err != nil {
		t.Fatalf("SimplifyFlatCoords: %v", err)
	}
	if diff := cmp.Diff([]int{0, 3}, got); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyFlatCoordsWideStride(t *testing.T) {
	// A third column (say, a measurement per point) rides along and must
	// not influence the geometry.
	flat := []float64{
		20, 100, 7,
		30, 30, 8,
		40, 170, 9,
		50, 105, 10,
	}
	got, err := SimplifyFlatCoords(flat, 40, 3)
	if err != nil {
		t.Fatalf("SimplifyFlatCoords: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyFlatCoordsBadShape(t *testing.T) {
	if _, err := SimplifyFlatCoords([]float64{1, 2, 3, 4}, 1, 1); !errors.Is(err, ErrBadShape) {
		t.Errorf("stride 1: got %v, want ErrBadShape", err)
	}
	if _, err := SimplifyFlatCoords([]float64{1, 2, 3}, 1, 2); !errors.Is(err, ErrBadShape) {
		t.Errorf("ragged input: got %v, want ErrBadShape", err)
	}
	if _, err := SimplifyFlatCoords([]float64{1, 2, 3, 4}, -1, 2); !errors.Is(err, ErrNegativeThickness) {
		t.Errorf("negative thickness: got %v, want ErrNegativeThickness", err)
	}
}
