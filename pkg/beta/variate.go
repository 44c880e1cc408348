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
)

// maxIntegerShape bounds the number of uniform draws a single gammaApprox
// may consume.
const maxIntegerShape = math.MaxInt32

/*
 * Variates from products of uniforms
 *
 * For integer n >= 1, -ln(U_1 * ... * U_n) ~ Gamma(n, 1) when the U_i are
 * independent U(0,1). With
 *   gp = ln(U_1 * ... * U_p)
 *   gq = ln(V_1 * ... * V_q)
 * both negated Gamma variates, gp / (gp + gq) ~ Beta(p, q); the signs cancel.
 */

// Sample draws one Beta(p, q) variate. p and q must both be integers >= 1.
func (d *Distribution) Sample() (float64, error) {
	p, q, err := d.integerShapes()
	if err != nil {
		return math.NaN(), err
	}
	gp := d.gammaApprox(p)
	gq := d.gammaApprox(q)
	return gp / (gp + gq), nil
}

// SampleEach draws n independent variates.
func (d *Distribution) SampleEach(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative sample count %d", n)
	}
	if _, _, err := d.integerShapes(); err != nil {
		return nil, err
	}
	res := make([]float64, n)
	for i := range res {
		v, err := d.Sample()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (d *Distribution) integerShapes() (int, int, error) {
	if d.p != math.Trunc(d.p) || d.q != math.Trunc(d.q) {
		return 0, 0, fmt.Errorf("%w: p=%v, q=%v, sampling requires integer shape parameters", ErrNonIntegerParameter, d.p, d.q)
	}
	if d.p < 1 || d.q < 1 || d.p > maxIntegerShape || d.q > maxIntegerShape {
		return 0, 0, fmt.Errorf("%w: p=%v, q=%v, sampling requires shape parameters in [1, %d]", ErrNonIntegerParameter, d.p, d.q, maxIntegerShape)
	}
	return int(d.p), int(d.q), nil
}

// gammaApprox returns ln(U_1 * ... * U_n), summed as logs so that the product
// never underflows to zero.
func (d *Distribution) gammaApprox(n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Log(d.source.Next())
	}
	return sum
}
