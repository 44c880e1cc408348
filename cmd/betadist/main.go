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

package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"sigs.k8s.io/betadist/cmd/betadist/app"
)

func main() {
	klog.InitFlags(nil)
	options := app.NewRunOptions()
	options.AddFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	err := app.Run(options, pflag.Args(), os.Stdout)
	klog.Flush()
	if err != nil {
		klog.ErrorS(err, "betadist failed")
		klog.Flush()
		os.Exit(1)
	}
}
