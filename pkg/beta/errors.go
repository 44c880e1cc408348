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
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a distribution is built from
	// shape parameters that are not strictly positive.
	ErrInvalidParameter = errors.New("invalid beta parameter")
	// ErrOutOfRange is returned when a pdf, cdf or icdf query lies outside [0,1].
	ErrOutOfRange = errors.New("value out of range [0, 1]")
	// ErrNonIntegerParameter is returned by Sample unless both shape
	// parameters are integers >= 1.
	ErrNonIntegerParameter = errors.New("non-integer beta parameter")
)

// checkRange : x must lie in [0,1]; NaN never does
func checkRange(x float64) error {
	if !(x >= 0 && x <= 1) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	return nil
}
