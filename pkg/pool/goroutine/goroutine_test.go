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

package goroutine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedPool(t *testing.T) {
	p, err := New(0, nil)
	require.NoError(t, err)
	defer p.Release()
	assert.Equal(t, Unbounded, p.Cap())

	var wg sync.WaitGroup
	release := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(func() {
			defer wg.Done()
			<-release
		}))
	}
	assert.Equal(t, 64, p.Running())
	close(release)
	wg.Wait()
}

func TestBoundedPoolOverload(t *testing.T) {
	p, err := New(1, nil)
	require.NoError(t, err)
	defer p.Release()

	release := make(chan struct{})
	done := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		<-release
		close(done)
	}))
	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolOverload)
	close(release)
	<-done
}

func TestPanicHandler(t *testing.T) {
	recovered := make(chan interface{}, 1)
	p, err := New(0, func(v interface{}) { recovered <- v })
	require.NoError(t, err)
	defer p.Release()

	require.NoError(t, p.Submit(func() { panic("boom") }))
	assert.Equal(t, "boom", <-recovered)
}
