// Copyright (c) 2023 The Gnet Authors. All rights reserved.
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

package linecho

import (
	"errors"
	"net"
	"time"

	errorx "github.com/linecho/linecho/pkg/errors"
	"github.com/linecho/linecho/pkg/pool/goroutine"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// accept runs the accept loop. It never waits on a connection: each one is
// handed to the pool and the loop goes straight back to Accept.
func (s *Server) accept() error {
	var delay time.Duration
	for {
		rwc, err := s.ln.ln.Accept()
		if err != nil {
			if s.inShutdown.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			if delay == 0 {
				delay = minAcceptDelay
			} else if delay *= 2; delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			s.opts.Logger.Errorf("%v: %v, retrying in %v", errorx.ErrAcceptSocket, err, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0
		s.dispatch(rwc)
	}
}

func (s *Server) dispatch(rwc net.Conn) {
	s.conns.Inc()
	c := newConn(rwc, s.opts, func() { s.conns.Dec() })
	if err := s.pool.Submit(c.serve); err != nil {
		if errors.Is(err, goroutine.ErrPoolOverload) {
			err = errorx.ErrPoolOverload
		}
		s.opts.Logger.Errorf("refuse connection from %s: %v", c.remoteAddr, err)
		c.close()
		return
	}
	if s.opts.Verbose {
		s.opts.Logger.Debugf("serving connection from %s", c.remoteAddr)
	}
}
