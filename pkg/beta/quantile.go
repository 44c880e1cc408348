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

package beta

import (
	"fmt"
	"math"
	"strconv"

	gocache "github.com/patrickmn/go-cache"

	"sigs.k8s.io/betadist/pkg/solver"
)

const (
	initialGuess = 0.5
	lowerBound   = 0.0
	upperBound   = 1.0
)

// ICDF returns the x in [0,1] with CDF(x) = prob. ICDF(0) = 0 and ICDF(1) = 1
// are returned without consulting the solver.
func (d *Distribution) ICDF(prob float64) (float64, error) {
	if err := checkRange(prob); err != nil {
		return math.NaN(), err
	}
	switch prob {
	case 0:
		return lowerBound, nil
	case 1:
		return upperBound, nil
	}

	key := strconv.FormatFloat(prob, 'g', -1, 64)
	if d.quantiles != nil {
		if x, ok := d.quantiles.Get(key); ok {
			d.lh.V(5).Info("quantile cache hit", "prob", prob, "x", x)
			return x.(float64), nil
		}
	}
	x, err := d.solver.FindRoot(d.cdfFunc(), prob, initialGuess, lowerBound, upperBound)
	if err != nil {
		return math.NaN(), fmt.Errorf("inverting cdf at %v: %w", prob, err)
	}
	if d.quantiles != nil {
		d.quantiles.Set(key, x, gocache.DefaultExpiration)
	}
	return x, nil
}

// ICDFEach returns ICDF(probs[i]) for each i. The 0 and 1 shortcuts apply to
// every element exactly as in ICDF.
func (d *Distribution) ICDFEach(probs []float64) ([]float64, error) {
	return atEach(probs, d.ICDF)
}

// cdfFunc exposes the cdf, with the unclamped density as its derivative, to
// the solver.
func (d *Distribution) cdfFunc() solver.Func {
	return solver.Func{
		F: d.cdf,
		D: func(x float64) float64 {
			if x <= 0 || x >= 1 {
				return math.NaN()
			}
			return d.density(x)
		},
	}
}
