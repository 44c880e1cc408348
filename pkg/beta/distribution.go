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

// Package beta evaluates the Beta distribution on [0,1]: density, cumulative
// probability, quantiles, moments and random variates.
//
//	http://en.wikipedia.org/wiki/Beta_distribution
//	p shape parameter (p > 0)
//	q shape parameter (q > 0)
//
// A Distribution is immutable once built and safe for concurrent use.
package beta

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	gocache "github.com/patrickmn/go-cache"
	"k8s.io/klog/v2"

	"sigs.k8s.io/betadist/apis/config"
	"sigs.k8s.io/betadist/apis/config/validation"
	"sigs.k8s.io/betadist/pkg/solver"
	"sigs.k8s.io/betadist/pkg/specialfunc"
	"sigs.k8s.io/betadist/pkg/uniform"
)

// defaultSource is shared by every Distribution built without WithSource.
var defaultSource uniform.Source = uniform.NewTimeSeededSource()

// Distribution is a Beta(p, q) distribution.
type Distribution struct {
	p       float64
	q       float64
	logBeta float64

	special   specialfunc.Library
	solver    solver.Solver
	source    uniform.Source
	quantiles *gocache.Cache
	lh        logr.Logger
}

// Option configures a Distribution.
type Option func(*Distribution)

// WithSpecialFunctions replaces the gonum backed special functions.
func WithSpecialFunctions(lib specialfunc.Library) Option {
	return func(d *Distribution) {
		d.special = lib
	}
}

// WithSolver replaces the quantile solver.
func WithSolver(s solver.Solver) Option {
	return func(d *Distribution) {
		d.solver = s
	}
}

// WithSource replaces the uniform source consumed by Sample.
func WithSource(src uniform.Source) Option {
	return func(d *Distribution) {
		d.source = src
	}
}

// WithQuantileCache memoizes ICDF results for ttl.
func WithQuantileCache(ttl time.Duration) Option {
	return func(d *Distribution) {
		if ttl > 0 {
			d.quantiles = gocache.New(ttl, 2*ttl)
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(lh logr.Logger) Option {
	return func(d *Distribution) {
		d.lh = lh
	}
}

// New returns a Beta(p, q) distribution. Both shapes must be finite and
// strictly positive.
func New(p, q float64, opts ...Option) (*Distribution, error) {
	if !validShape(p) || !validShape(q) {
		return nil, fmt.Errorf("%w: p=%v, q=%v, shape parameters must be greater than zero", ErrInvalidParameter, p, q)
	}
	d := &Distribution{
		p:       p,
		q:       q,
		special: specialfunc.Gonum{},
		source:  defaultSource,
		lh:      klog.Background(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.lh.GetSink() == nil {
		d.lh = klog.Background()
	}
	if d.solver == nil {
		d.solver = solver.NewNewtonBisection(d.lh, solver.DefaultTolerance, solver.DefaultMaxIterations)
	}
	d.logBeta = d.special.LogBeta(p, q)
	d.lh.V(5).Info("created beta distribution", "p", p, "q", q, "logBeta", d.logBeta)
	return d, nil
}

// NewFromArgs defaults and validates args, then builds the distribution they
// describe. opts are applied after the ones derived from args.
func NewFromArgs(args *config.BetaArgs, opts ...Option) (*Distribution, error) {
	a := *args
	config.SetDefaults_BetaArgs(&a)
	if err := validation.ValidateBetaArgs(nil, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	lh := klog.Background()
	derived := []Option{
		WithLogger(lh),
		WithSolver(solver.NewNewtonBisection(lh, a.Tolerance, int(a.MaxIterations))),
	}
	if a.QuantileCacheTTLSeconds > 0 {
		derived = append(derived, WithQuantileCache(time.Duration(a.QuantileCacheTTLSeconds)*time.Second))
	}
	if a.Seed != 0 {
		derived = append(derived, WithSource(uniform.NewSource(a.Seed)))
	}
	return New(a.P, a.Q, append(derived, opts...)...)
}

// FromMoments returns the distribution matching the given mean and variance.
// The variance must be below the maximum mean*(1-mean) a Beta distribution
// can have for that mean.
func FromMoments(mean, variance float64, opts ...Option) (*Distribution, error) {
	if !(mean > 0 && mean < 1) || !(variance > 0) || variance >= MaxVariance(mean) {
		return nil, fmt.Errorf("%w: no beta distribution with mean=%v, variance=%v", ErrInvalidParameter, mean, variance)
	}
	temp := (mean * (1 - mean) / variance) - 1
	temp = math.Max(temp, math.SmallestNonzeroFloat64)
	return New(mean*temp, (1-mean)*temp, opts...)
}

// MaxVariance : Maximum variance for a given mean
func MaxVariance(mean float64) float64 {
	if mean > 0 && mean < 1 {
		return mean * (1 - mean)
	}
	return 0
}

func validShape(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// P : the first shape parameter
func (d *Distribution) P() float64 {
	return d.p
}

// Q : the second shape parameter
func (d *Distribution) Q() float64 {
	return d.q
}

// Mean : E[X] = p / (p + q)
func (d *Distribution) Mean() float64 {
	return d.p / (d.p + d.q)
}

// Variance : V[X] = pq / ((p+q)^2 (p+q+1))
func (d *Distribution) Variance() float64 {
	s := d.p + d.q
	return d.p * d.q / (s * s * (s + 1))
}

// StandardDeviation : sqrt(V[X])
func (d *Distribution) StandardDeviation() float64 {
	return math.Sqrt(d.Variance())
}

// String : summary of the distribution
func (d *Distribution) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "BetaDistribution: ")
	fmt.Fprintf(&buf, "p = %f; q = %f; ", d.p, d.q)
	fmt.Fprintf(&buf, "mean = %f; var = %f; sd = %f; ", d.Mean(), d.Variance(), d.StandardDeviation())
	return buf.String()
}
