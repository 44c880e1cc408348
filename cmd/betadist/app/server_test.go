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

package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/betadist/apis/config"
	"sigs.k8s.io/betadist/pkg/beta"
)

func parse(t *testing.T, flags ...string) (*RunOptions, []string) {
	t.Helper()
	opts := NewRunOptions()
	fs := pflag.NewFlagSet("test", pflag.PanicOnError)
	opts.AddFlags(fs)
	require.NoError(t, fs.Parse(flags))
	return opts, fs.Args()
}

func TestAddFlags(t *testing.T) {
	opts, args := parse(t, "--p=2", "--q=3", "-o", "icdf", "--quantile-cache-ttl=30", "--seed=4", "-n", "7", "0.5")
	assert.Equal(t, []string{"0.5"}, args)
	want := &config.BetaArgs{
		P:                       2,
		Q:                       3,
		Tolerance:               config.DefaultTolerance,
		MaxIterations:           config.DefaultMaxIterations,
		QuantileCacheTTLSeconds: 30,
		Seed:                    4,
	}
	got, err := opts.BetaArgs()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected args (-want, +got):\n%s", diff)
	}
	assert.Equal(t, OpICDF, opts.Operation)
	assert.Equal(t, 7, opts.Count)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("p: 4\nq: 6\nmaxIterations: 50\nseed: 9\n"), 0o600))

	opts, _ := parse(t, "--config="+path, "--q=2", "-o", "mean")
	got, err := opts.BetaArgs()
	require.NoError(t, err)
	want := &config.BetaArgs{
		P:             4,
		Q:             2,
		MaxIterations: 50,
		Seed:          9,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected args (-want, +got):\n%s", diff)
	}

	var out bytes.Buffer
	require.NoError(t, Run(opts, nil, &out))
	assert.Equal(t, "0.666667\n", out.String())
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("p: 1\nalpha: 2\n"), 0o600))

	for _, path := range []string{unknown, filepath.Join(dir, "missing.yaml")} {
		opts, _ := parse(t, "--config="+path)
		_, err := opts.BetaArgs()
		assert.Error(t, err, path)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{
			name:  "mean",
			flags: []string{"--p=2", "--q=3", "-o", "mean"},
			want:  "0.4\n",
		},
		{
			name:  "standard deviation",
			flags: []string{"--p=2", "--q=3", "-o", "sd"},
			want:  "0.2\n",
		},
		{
			name:  "variance",
			flags: []string{"--p=2", "--q=3", "-o", "variance"},
			want:  "0.04\n",
		},
		{
			name:  "pdf",
			flags: []string{"--p=2", "--q=3", "-o", "pdf", "0", "0.2", "1"},
			want:  "0\t0\n0.2\t1.536\n1\t0\n",
		},
		{
			name:  "cdf",
			flags: []string{"--p=2", "--q=2", "-o", "cdf", "0", "0.5", "1"},
			want:  "0\t0\n0.5\t0.5\n1\t1\n",
		},
		{
			name:  "icdf",
			flags: []string{"--p=2", "--q=2", "-o", "icdf", "--quantile-cache-ttl=60", "1", "0.5", "0"},
			want:  "1\t1\n0.5\t0.5\n0\t0\n",
		},
		{
			name:  "raw",
			flags: []string{"--p=1", "--q=2", "-o", "mean", "--raw"},
			want:  "0.3333333333333333\n",
		},
		{
			name:  "summary",
			flags: []string{"--p=3", "--q=1"},
			want:  "BetaDistribution: p = 3.000000; q = 1.000000; mean = 0.750000; var = 0.037500; sd = 0.193649; \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, args := parse(t, tt.flags...)
			var out bytes.Buffer
			require.NoError(t, Run(opts, args, &out))
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("unexpected output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunSample(t *testing.T) {
	opts, args := parse(t, "--p=2", "--q=3", "-o", "sample", "-n", "5", "--seed=12", "--raw")
	var first, second bytes.Buffer
	require.NoError(t, Run(opts, args, &first))
	require.NoError(t, Run(opts, args, &second))
	assert.Equal(t, first.String(), second.String())

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		x, err := strconv.ParseFloat(l, 64)
		require.NoError(t, err)
		assert.True(t, x > 0 && x < 1, "sample %v", x)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid shape",
			flags:   []string{"--p=0", "-o", "mean"},
			wantErr: beta.ErrInvalidParameter,
		},
		{
			name:    "out of range",
			flags:   []string{"-o", "pdf", "1.5"},
			wantErr: beta.ErrOutOfRange,
		},
		{
			name:    "non integer sample",
			flags:   []string{"--p=2.5", "-o", "sample"},
			wantErr: beta.ErrNonIntegerParameter,
		},
		{
			name:    "unknown operation",
			flags:   []string{"-o", "kurtosis"},
			wantMsg: `unknown operation "kurtosis"`,
		},
		{
			name:    "missing values",
			flags:   []string{"-o", "cdf"},
			wantMsg: `operation "cdf" requires at least one value`,
		},
		{
			name:    "malformed value",
			flags:   []string{"-o", "cdf", "half"},
			wantMsg: `invalid value "half"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, args := parse(t, tt.flags...)
			var out bytes.Buffer
			err := Run(opts, args, &out)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, out.String())
		})
	}
}
