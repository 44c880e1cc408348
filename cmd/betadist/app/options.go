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
	"os"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/betadist/apis/config"
)

type RunOptions struct {
	ConfigFile              string
	P                       float64
	Q                       float64
	Operation               string
	Tolerance               float64
	MaxIterations           int32
	QuantileCacheTTLSeconds int64
	Seed                    uint64
	Count                   int
	Raw                     bool

	flags *pflag.FlagSet
}

func NewRunOptions() *RunOptions {
	return &RunOptions{}
}

func (s *RunOptions) AddFlags(fs *pflag.FlagSet) {
	s.flags = fs
	fs.StringVar(&s.ConfigFile, "config", "", "Path to a YAML file holding BetaArgs. Flags set explicitly override its values.")
	fs.Float64Var(&s.P, "p", 1, "First shape parameter, p > 0.")
	fs.Float64Var(&s.Q, "q", 1, "Second shape parameter, q > 0.")
	fs.StringVarP(&s.Operation, "operation", "o", OpSummary, "One of summary, mean, sd, variance, pdf, cdf, icdf, sample.")
	fs.Float64Var(&s.Tolerance, "tolerance", config.DefaultTolerance, "Convergence tolerance of the quantile solver.")
	fs.Int32Var(&s.MaxIterations, "max-iterations", config.DefaultMaxIterations, "Iteration bound of the quantile solver.")
	fs.Int64Var(&s.QuantileCacheTTLSeconds, "quantile-cache-ttl", 0, "Seconds to memoize computed quantiles, 0 disables.")
	fs.Uint64Var(&s.Seed, "seed", 0, "Seed of the uniform source, 0 seeds from the clock.")
	fs.IntVarP(&s.Count, "count", "n", 1, "Number of variates to draw for the sample operation.")
	fs.BoolVar(&s.Raw, "raw", false, "Print values at full precision instead of six decimals.")
}

// BetaArgs returns the distribution configuration: the config file, if any,
// overlaid with the flags. Without a config file every flag applies.
func (s *RunOptions) BetaArgs() (*config.BetaArgs, error) {
	args := &config.BetaArgs{}
	if s.ConfigFile != "" {
		data, err := os.ReadFile(s.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, args); err != nil {
			return nil, fmt.Errorf("decoding config %s: %w", s.ConfigFile, err)
		}
	}

	set := func(name string) bool {
		return s.ConfigFile == "" || s.flags == nil || s.flags.Changed(name)
	}
	if set("p") {
		args.P = s.P
	}
	if set("q") {
		args.Q = s.Q
	}
	if set("tolerance") {
		args.Tolerance = s.Tolerance
	}
	if set("max-iterations") {
		args.MaxIterations = s.MaxIterations
	}
	if set("quantile-cache-ttl") {
		args.QuantileCacheTTLSeconds = s.QuantileCacheTTLSeconds
	}
	if set("seed") {
		args.Seed = s.Seed
	}
	return args, nil
}
