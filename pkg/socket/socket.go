// Copyright (c) 2020 The Gnet Authors. All rights reserved.
// Copyright (c) 2017 Max Riveiro
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

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// Package socket provides the socket-related functions linecho uses to set up
// its listening endpoint: socket creation, socket options, bind and listen
// with an explicit backlog.
package socket

import (
	"net"
)

// Option is used for setting an option on socket.
type Option struct {
	SetSockOpt func(int, int) error
	Opt        int
}

func execSockOpts(fd int, opts []Option) error {
	for _, opt := range opts {
		if err := opt.SetSockOpt(fd, opt.Opt); err != nil {
			return err
		}
	}
	return nil
}

// TCPSocket creates a TCP socket bound to addr and puts it into the listening state
// with the given backlog, a non-positive backlog means the maximum allowed by the system.
// The given socket options will be set on the returned file descriptor before it's bound.
func TCPSocket(proto, addr string, backlog int, sockOpts ...Option) (int, net.Addr, error) {
	return tcpSocket(proto, addr, backlog, sockOpts)
}
