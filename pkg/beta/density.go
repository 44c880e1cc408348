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

import "math"

// PDF returns the probability density at x in [0,1].
//
// PDF(0) and PDF(1) are reported as 0 for every p, q, even where the density
// diverges at the boundary (p < 1 or q < 1).
func (d *Distribution) PDF(x float64) (float64, error) {
	if err := checkRange(x); err != nil {
		return math.NaN(), err
	}
	if x == 0 || x == 1 {
		return 0, nil
	}
	return d.density(x), nil
}

// PDFEach returns PDF(xs[i]) for each i.
func (d *Distribution) PDFEach(xs []float64) ([]float64, error) {
	return atEach(xs, d.PDF)
}

// CDF returns P(X <= x) for x in [0,1].
func (d *Distribution) CDF(x float64) (float64, error) {
	if err := checkRange(x); err != nil {
		return math.NaN(), err
	}
	return d.cdf(x), nil
}

// CDFEach returns CDF(xs[i]) for each i.
func (d *Distribution) CDFEach(xs []float64) ([]float64, error) {
	return atEach(xs, d.CDF)
}

// density evaluates the interior density in log space, which stays finite
// for large p, q where x^(p-1) (1-x)^(q-1) / B(p,q) would not.
func (d *Distribution) density(x float64) float64 {
	return math.Exp(-d.logBeta + (d.p-1)*math.Log(x) + (d.q-1)*math.Log1p(-x))
}

func (d *Distribution) cdf(x float64) float64 {
	return d.special.RegIncBeta(x, d.p, d.q)
}
