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

var (
	// Defaults for the quantile solver
	DefaultTolerance = 1e-10
	// Bisection alone needs ~34 iterations on [0,1] at DefaultTolerance.
	DefaultMaxIterations int32 = 200
)

// SetDefaults_BetaArgs sets the default solver parameters.
func SetDefaults_BetaArgs(obj *BetaArgs) {
	if obj.Tolerance == 0 {
		obj.Tolerance = DefaultTolerance
	}
	if obj.MaxIterations == 0 {
		obj.MaxIterations = DefaultMaxIterations
	}
}
