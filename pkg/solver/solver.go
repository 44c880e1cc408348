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

// Package solver inverts monotone functions on a bracketing interval.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

const (
	// DefaultTolerance is the default relative convergence tolerance. It
	// scales |f(x) - target| by the distance from target to the nearer of
	// f(lower) and f(upper), and the bracket width by the magnitude of its
	// ends.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations is the default iteration bound of FindRoot.
	DefaultMaxIterations = 200
)

var (
	// ErrNotBracketed is returned when target does not lie between
	// f(lower) and f(upper).
	ErrNotBracketed = errors.New("target is not bracketed by the interval")
	// ErrNoConvergence is returned when the iteration bound is reached.
	ErrNoConvergence = errors.New("root finding did not converge")
)

// Monotone is a non-decreasing function of one variable.
type Monotone interface {
	// At returns the value of the function at x.
	At(x float64) float64
}

// Differentiable is a Monotone function that also knows its derivative.
// Solvers use the derivative to take Newton steps when it is available.
type Differentiable interface {
	Monotone
	Derivative(x float64) float64
}

// Solver finds x in [lower, upper] with f(x) ≈ target.
type Solver interface {
	FindRoot(f Monotone, target, guess, lower, upper float64) (float64, error)
}

// NewtonBisection is a safeguarded Newton solver. Every iterate is kept inside
// a shrinking bracket; a Newton step that would leave it or that shrinks too
// slowly, or a missing or non-positive derivative, is replaced by a bisection
// step.
type NewtonBisection struct {
	Tolerance     float64
	MaxIterations int
	lh            logr.Logger
}

var _ Solver = &NewtonBisection{}

// NewNewtonBisection returns a solver with the given tolerance and iteration
// bound. Non-positive values select the defaults.
func NewNewtonBisection(lh logr.Logger, tolerance float64, maxIterations int) *NewtonBisection {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &NewtonBisection{
		Tolerance:     tolerance,
		MaxIterations: maxIterations,
		lh:            lh,
	}
}

// Default returns a solver with default settings logging through klog.
func Default() *NewtonBisection {
	return NewNewtonBisection(klog.Background(), DefaultTolerance, DefaultMaxIterations)
}

// FindRoot returns x in [lower, upper] such that |f(x) - target| is within
// the relative tolerance, or the bracket around x has shrunk below it. A
// bracket that can no longer be split in float64 also ends the search.
func (s *NewtonBisection) FindRoot(f Monotone, target, guess, lower, upper float64) (float64, error) {
	if math.IsNaN(target) || math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return math.NaN(), fmt.Errorf("%w: target=%v interval=[%v, %v]", ErrNotBracketed, target, lower, upper)
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	lh := s.lh
	if lh.GetSink() == nil {
		lh = klog.Background()
	}

	flo := f.At(lower) - target
	if flo == 0 {
		return lower, nil
	}
	fhi := f.At(upper) - target
	if fhi == 0 {
		return upper, nil
	}
	if flo > 0 || fhi < 0 {
		return math.NaN(), fmt.Errorf("%w: target=%v f(%v)=%v f(%v)=%v", ErrNotBracketed, target, lower, flo+target, upper, fhi+target)
	}
	// Residuals are measured against the distance to the nearer end of the
	// range, so targets deep in either tail keep their relative precision.
	residualTol := tol * math.Min(-flo, fhi)

	df, hasDerivative := f.(Differentiable)
	lo, hi := lower, upper
	dx, dxOld := hi-lo, hi-lo
	x := guess
	if !(x > lo && x < hi) {
		x = lo + (hi-lo)/2
	}
	for i := 0; i < maxIter; i++ {
		fx := f.At(x) - target
		lh.V(6).Info("solver iteration", "iteration", i, "x", x, "residual", fx, "lower", lo, "upper", hi)
		if math.Abs(fx) <= residualTol {
			lh.V(5).Info("solver converged", "target", target, "x", x, "iterations", i+1)
			return x, nil
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}
		if hi-lo <= tol*math.Max(math.Abs(lo), math.Abs(hi)) {
			lh.V(5).Info("solver bracket collapsed", "target", target, "x", x, "iterations", i+1)
			return x, nil
		}

		next := math.NaN()
		if hasDerivative {
			if d := df.Derivative(x); d > 0 && !math.IsInf(d, 0) {
				next = x - fx/d
			}
		}
		// Newton steps must stay inside the bracket and at least halve the
		// step before last.
		if !(next > lo && next < hi) || math.Abs(next-x) > math.Abs(dxOld)/2 {
			next = lo + (hi-lo)/2
		}
		if !(next > lo && next < hi) {
			// lo and hi are adjacent floats.
			lh.V(5).Info("solver reached float resolution", "target", target, "x", x, "iterations", i+1)
			return x, nil
		}
		dxOld, dx = dx, next-x
		x = next
	}
	return math.NaN(), fmt.Errorf("%w: target=%v after %d iterations", ErrNoConvergence, target, maxIter)
}

// Func adapts plain functions to Monotone and, when D is set, Differentiable.
type Func struct {
	F func(x float64) float64
	D func(x float64) float64
}

// At returns F(x).
func (fn Func) At(x float64) float64 {
	return fn.F(x)
}

// Derivative returns D(x), or NaN when no derivative was supplied.
func (fn Func) Derivative(x float64) float64 {
	if fn.D == nil {
		return math.NaN()
	}
	return fn.D(x)
}
