/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"sigs.k8s.io/betadist/pkg/beta"
)

const (
	OpSummary  = "summary"
	OpMean     = "mean"
	OpSD       = "sd"
	OpVariance = "variance"
	OpPDF      = "pdf"
	OpCDF      = "cdf"
	OpICDF     = "icdf"
	OpSample   = "sample"
)

// Run evaluates s.Operation and writes one line per result to out. pdf, cdf
// and icdf take their query points from values and print "input<TAB>value".
func Run(s *RunOptions, values []string, out io.Writer) error {
	args, err := s.BetaArgs()
	if err != nil {
		return err
	}
	dist, err := beta.NewFromArgs(args)
	if err != nil {
		return err
	}
	logger := klog.Background().WithName("betadist")
	logger.V(2).Info("evaluating", "operation", s.Operation, "p", dist.P(), "q", dist.Q(), "inputs", len(values))

	format := humanize.Ftoa
	if s.Raw {
		format = func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	switch s.Operation {
	case OpSummary:
		_, err = fmt.Fprintln(out, dist.String())
		return err
	case OpMean:
		return printValue(out, format(dist.Mean()))
	case OpSD:
		return printValue(out, format(dist.StandardDeviation()))
	case OpVariance:
		return printValue(out, format(dist.Variance()))
	case OpSample:
		xs, err := dist.SampleEach(s.Count)
		if err != nil {
			return err
		}
		for _, x := range xs {
			if err := printValue(out, format(x)); err != nil {
				return err
			}
		}
		return nil
	}

	var eval func([]float64) ([]float64, error)
	switch s.Operation {
	case OpPDF:
		eval = dist.PDFEach
	case OpCDF:
		eval = dist.CDFEach
	case OpICDF:
		eval = dist.ICDFEach
	default:
		return fmt.Errorf("unknown operation %q", s.Operation)
	}
	if len(values) == 0 {
		return fmt.Errorf("operation %q requires at least one value", s.Operation)
	}
	xs, err := parseValues(values)
	if err != nil {
		return err
	}
	results, err := eval(xs)
	if err != nil {
		return err
	}
	for i, r := range results {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", format(xs[i]), format(r)); err != nil {
			return err
		}
	}
	return nil
}

func parseValues(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		xs[i] = x
	}
	return xs, nil
}

func printValue(out io.Writer, v string) error {
	_, err := fmt.Fprintln(out, v)
	return err
}
