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

package validation

import (
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"sigs.k8s.io/betadist/apis/config"
)

func ValidateBetaArgs(path *field.Path, args *config.BetaArgs) error {
	var allErrs field.ErrorList
	if err := validateShape(args.P, path.Child("p")); err != nil {
		allErrs = append(allErrs, err)
	}
	if err := validateShape(args.Q, path.Child("q")); err != nil {
		allErrs = append(allErrs, err)
	}
	if err := validateTolerance(args.Tolerance, path.Child("tolerance")); err != nil {
		allErrs = append(allErrs, err)
	}
	if args.MaxIterations <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("maxIterations"), args.MaxIterations, "should be greater than zero"))
	}
	if args.QuantileCacheTTLSeconds < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("quantileCacheTTLSeconds"), args.QuantileCacheTTLSeconds, "should not be negative"))
	}

	return allErrs.ToAggregate()
}

func validateShape(v float64, path *field.Path) *field.Error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return field.Invalid(path, v, "should be a finite number greater than zero")
	}
	return nil
}

func validateTolerance(tol float64, path *field.Path) *field.Error {
	if math.IsNaN(tol) || tol <= 0 || tol >= 1 {
		return field.Invalid(path, tol, "should be in (0, 1)")
	}
	return nil
}
