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

// Package specialfunc provides the Beta related special functions used to
// evaluate a Beta distribution.
package specialfunc

import (
	"math"

	gonum "gonum.org/v1/gonum/mathext"
)

// Library evaluates the special functions a Beta distribution is built on.
type Library interface {
	// LogBeta returns ln B(p,q), p,q > 0.
	LogBeta(p, q float64) float64
	// RegIncBeta returns I_x(p,q), the regularized incomplete beta function,
	// for x in [0,1] and p,q > 0.
	RegIncBeta(x, p, q float64) float64
}

// Gonum is the Library backed by gonum's mathext package.
type Gonum struct{}

var _ Library = Gonum{}

// LogBeta : ln B(p,q), NaN unless p,q > 0
func (Gonum) LogBeta(p, q float64) float64 {
	if p <= 0 || q <= 0 {
		return math.NaN()
	}
	return gonum.Lbeta(p, q)
}

// RegIncBeta : I_x(p,q) = B(x;p,q) / B(p,q), p,q > 0, x in [0,1],
// where B(x;p,q) is the incomplete and B(p,q) is the complete beta function
func (Gonum) RegIncBeta(x, p, q float64) float64 {
	if p <= 0 || q <= 0 || x < 0 || x > 1 || math.IsNaN(x) {
		return math.NaN()
	}
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return gonum.RegIncBeta(p, q, x)
	}
}
