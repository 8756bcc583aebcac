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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dpdetect/thickpoly/dominant"
	"github.com/dpdetect/thickpoly/planar"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure reduction quality and speed on a sampled circle",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBench(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var benchFlags struct {
	radius    float64
	samples   int
	thickness float64
	runs      int
}

func init() {
	f := benchCmd.Flags()
	f.Float64Var(&benchFlags.radius, "radius", 10, "circle radius")
	f.IntVar(&benchFlags.samples, "samples", 10000, "samples across the upper semicircle")
	f.Float64Var(&benchFlags.thickness, "thickness", 0.1, "deviation tolerance")
	f.IntVar(&benchFlags.runs, "runs", 10, "timed repetitions")
}

func runBench() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer logger.Sync()

	pts := planar.CirclePoints(planar.Pt(40.0, 100.0), benchFlags.radius, benchFlags.samples)

	var reduced []planar.Point[float64]
	minRun := time.Duration(1<<63 - 1)
	var total time.Duration
	for i := 0; i < benchFlags.runs; i++ {
		start := time.Now()
		reduced, err = dominant.Approximate(pts, benchFlags.thickness)
		elapsed := time.Since(start)
		if err != nil {
			return errors.Wrap(err, "benchmark run")
		}
		total += elapsed
		if elapsed < minRun {
			minRun = elapsed
		}
	}

	areaIn := planar.Area(pts)
	areaOut := planar.Area(reduced)
	areaErr := 0.0
	if areaIn != 0 {
		areaErr = (areaIn - areaOut) / areaIn
	}

	logger.Info("bench",
		zap.Int("vertices_in", len(pts)),
		zap.Int("vertices_out", len(reduced)),
		zap.Float64("thickness", benchFlags.thickness),
		zap.Float64("area_error", areaErr),
		zap.Duration("min_run", minRun),
		zap.Duration("mean_run", total/time.Duration(benchFlags.runs)),
	)
	return nil
}
