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

// Package pointio reads and writes point sequences as two-column CSV,
// one "x,y" pair per line. Lines starting with '#' are comments.
package pointio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dpdetect/thickpoly/planar"
)

// ReadPoints parses a two-column CSV stream into a point sequence,
// preserving input order. A row with other than two fields is an error
// reported with its line number.
func ReadPoints(r io.Reader) ([]planar.Point[float64], error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var pts []planar.Point[float64]
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading point row")
		}

		line, _ := cr.FieldPos(0)
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad x coordinate %q", line, rec[0])
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad y coordinate %q", line, rec[1])
		}
		pts = append(pts, planar.Point[float64]{X: x, Y: y})
	}
	return pts, nil
}

// WritePoints writes pts as two-column CSV in input order.
func WritePoints(w io.Writer, pts []planar.Point[float64]) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%g,%g\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing point row")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing points")
}

// ReadPointsFile reads a point sequence from the named CSV file.
func ReadPointsFile(path string) ([]planar.Point[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return pts, nil
}

// WritePointsFile writes a point sequence to the named CSV file,
// creating or truncating it.
func WritePointsFile(path string, pts []planar.Point[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := WritePoints(f, pts); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
