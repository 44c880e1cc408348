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

import "fmt"

// atEach applies f to every element of xs, in order. The first element f
// rejects aborts the whole call: the result is nil and the error names the
// offending index.
func atEach(xs []float64, f func(float64) (float64, error)) ([]float64, error) {
	res := make([]float64, len(xs))
	for i, x := range xs {
		v, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
