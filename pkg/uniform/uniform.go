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

// Package uniform provides the U(0,1) draws consumed by variate generation.
package uniform

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Source produces independent draws from U(0,1).
type Source interface {
	// Next returns a value in the open interval (0,1).
	Next() float64
}

// Locked is a Source safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ Source = &Locked{}

// NewSource returns a Locked source seeded with seed.
func NewSource(seed uint64) *Locked {
	return &Locked{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// NewTimeSeededSource returns a Locked source seeded from the wall clock.
func NewTimeSeededSource() *Locked {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Next draws from [0,1) and rejects exact zeros.
func (l *Locked) Next() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		if u := l.rnd.Float64(); u > 0 {
			return u
		}
	}
}
