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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dpdetect/thickpoly/dominant"
	"github.com/dpdetect/thickpoly/planar"
	"github.com/dpdetect/thickpoly/pointio"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Reduce a point sequence to its dominant points",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimplify(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var simplifyFlags struct {
	in        string
	out       string
	thickness float64
	config    string
}

func init() {
	f := simplifyCmd.Flags()
	f.StringVar(&simplifyFlags.in, "in", "", "input CSV file of x,y points")
	f.StringVar(&simplifyFlags.out, "out", "", "output CSV file (default: stdout)")
	f.Float64Var(&simplifyFlags.thickness, "thickness", 1.0, "deviation tolerance")
	f.StringVar(&simplifyFlags.config, "config", "", "YAML job file (overrides the other flags)")
}

// job is one simplification task in a YAML job file.
type job struct {
	Input     string  `yaml:"input"`
	Output    string  `yaml:"output"`
	Thickness float64 `yaml:"thickness"`
}

type jobFile struct {
	Jobs []job `yaml:"jobs"`
}

func loadJobs(path string) (*jobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading job file %s", path)
	}
	var jf jobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, errors.Wrapf(err, "parsing job file %s", path)
	}
	if len(jf.Jobs) == 0 {
		return nil, errors.Errorf("job file %s defines no jobs", path)
	}
	return &jf, nil
}

func runSimplify() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer logger.Sync()

	if simplifyFlags.config != "" {
		jf, err := loadJobs(simplifyFlags.config)
		if err != nil {
			return err
		}
		for _, j := range jf.Jobs {
			if err := simplifyOne(logger, j); err != nil {
				return err
			}
		}
		return nil
	}

	if simplifyFlags.in == "" {
		return errors.New("either -in or -config is required")
	}
	return simplifyOne(logger, job{
		Input:     simplifyFlags.in,
		Output:    simplifyFlags.out,
		Thickness: simplifyFlags.thickness,
	})
}

func simplifyOne(logger *zap.Logger, j job) error {
	pts, err := pointio.ReadPointsFile(j.Input)
	if err != nil {
		return err
	}

	reduced, err := dominant.Approximate(pts, j.Thickness)
	if err != nil {
		return errors.Wrapf(err, "simplifying %s", j.Input)
	}

	logger.Info("simplified",
		zap.String("input", j.Input),
		zap.Float64("thickness", j.Thickness),
		zap.Int("vertices_in", len(pts)),
		zap.Int("vertices_out", len(reduced)),
		zap.Float64("area_in", planar.Area(pts)),
		zap.Float64("area_out", planar.Area(reduced)),
	)

	if j.Output == "" {
		return pointio.WritePoints(os.Stdout, reduced)
	}
	return pointio.WritePointsFile(j.Output, reduced)
}
