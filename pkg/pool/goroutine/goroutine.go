// Copyright (c) 2019 Andy Pan
// Copyright (c) 2026 The Linecho Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package goroutine provides the worker pool that runs connection handlers,
// one worker per connection.
package goroutine

import (
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	// ExpiryDuration is the interval time to clean up those expired workers.
	ExpiryDuration = 10 * time.Second

	// Unbounded is the capacity that lets the pool spawn a worker for every submitted task.
	Unbounded = -1
)

// Pool is the alias of ants.Pool.
type Pool = ants.Pool

// ErrPoolOverload is returned by Submit when a bounded pool has no idle worker left.
var ErrPoolOverload = ants.ErrPoolOverload

// New instantiates a *Pool for connection handlers. A non-positive capacity
// creates an unbounded pool, otherwise the pool is non-blocking: submitting
// beyond the capacity fails immediately with ErrPoolOverload instead of waiting.
func New(capacity int, panicHandler func(interface{})) (*Pool, error) {
	if capacity <= 0 {
		capacity = Unbounded
	}
	return ants.NewPool(capacity,
		ants.WithExpiryDuration(ExpiryDuration),
		ants.WithNonblocking(true),
		ants.WithPanicHandler(panicHandler))
}
