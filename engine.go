// Copyright (c) 2019 Andy Pan
// Copyright (c) 2018 Joshua J Baker
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
	"context"
	"fmt"
	"net"
	"strings"

	"go.uber.org/atomic"

	"github.com/linecho/linecho/pkg/errors"
	"github.com/linecho/linecho/pkg/logging"
	"github.com/linecho/linecho/pkg/pool/goroutine"
)

// Server is a line echo server bound to a listening socket.
type Server struct {
	ln         *listener       // the listener for accepting new connections
	opts       *Options        // options with server
	pool       *goroutine.Pool // runs one handler per connection
	conns      atomic.Int32    // number of connections being served
	inShutdown atomic.Bool     // whether the server is in shutdown
}

// NewServer sets up the listening socket described by protoAddr, e.g. "tcp4://:2345",
// and returns a server ready to Serve. Any failure to create, bind or listen on the
// socket is returned and leaves nothing open behind.
func NewServer(protoAddr string, opts ...Option) (*Server, error) {
	options := loadOptions(opts...)
	if options.Logger == nil {
		options.Logger = logging.GetDefaultLogger()
	}
	if options.LineBufferCap <= 0 {
		options.LineBufferCap = DefaultLineBufferCap
	}
	if options.MaxConns < 0 {
		return nil, errors.ErrInvalidMaxConns
	}

	network, address := parseProtoAddr(protoAddr)
	ln, err := initListener(network, address, options)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", protoAddr, err)
	}

	s := &Server{ln: ln, opts: options}
	s.pool, err = goroutine.New(options.MaxConns, func(v interface{}) {
		options.Logger.Errorf("connection handler panics: %v", v)
	})
	if err != nil {
		_ = ln.close()
		return nil, err
	}
	return s, nil
}

// Run sets up a server on protoAddr and serves until ctx is done.
func Run(ctx context.Context, protoAddr string, opts ...Option) error {
	s, err := NewServer(protoAddr, opts...)
	if err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve accepts connections and serves each of them on its own goroutine,
// it blocks until ctx is done or Stop is called, in both cases it returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if s.inShutdown.Load() {
		return errors.ErrEngineShutdown
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-done:
		}
	}()

	s.opts.Logger.Infof("linecho server is listening on %s://%s", s.ln.network, s.ln.addr)
	return s.accept()
}

// Stop closes the listening socket so that Serve returns. Connections that are
// already being served are left alone and end when their clients disconnect.
func (s *Server) Stop() error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		return errors.ErrEngineInShutdown
	}
	err := s.ln.close()
	s.pool.Release()
	return err
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.ln.addr
}

// CountConnections counts the number of connections being served.
func (s *Server) CountConnections() int {
	return int(s.conns.Load())
}

func parseProtoAddr(protoAddr string) (network, address string) {
	network = "tcp"
	address = strings.ToLower(protoAddr)
	if strings.Contains(address, "://") {
		pair := strings.Split(address, "://")
		network = pair[0]
		address = pair[1]
	}
	return
}
