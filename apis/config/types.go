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

package config

// BetaArgs defines the parameters of a Beta distribution and of the
// numerical machinery used to evaluate it.
type BetaArgs struct {
	// P is the first shape parameter (P > 0).
	P float64 `json:"p"`
	// Q is the second shape parameter (Q > 0).
	Q float64 `json:"q"`

	// Tolerance is the convergence tolerance of the quantile solver.
	Tolerance float64 `json:"tolerance,omitempty"`
	// MaxIterations bounds the number of quantile solver iterations.
	MaxIterations int32 `json:"maxIterations,omitempty"`
	// QuantileCacheTTLSeconds is how long computed quantiles are memoized.
	// Zero disables the cache.
	QuantileCacheTTLSeconds int64 `json:"quantileCacheTTLSeconds,omitempty"`
	// Seed seeds the uniform source used for sampling. Zero seeds from the clock.
	Seed uint64 `json:"seed,omitempty"`
}
