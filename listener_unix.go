// Copyright (c) 2019 Andy Pan
// Copyright (c) 2018 Joshua J Baker
// Copyright (c) 2026 The Linecho Authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package linecho

import (
	"fmt"
	"net"
	"os"

	"github.com/linecho/linecho/pkg/errors"
	"github.com/linecho/linecho/pkg/socket"
)

// normalize creates the listening socket by hand so that the socket options
// and the listen backlog are under control, then hands it over to the net package.
func (ln *listener) normalize() error {
	switch ln.network {
	case "tcp", "tcp4", "tcp6":
	default:
		return errors.ErrUnsupportedProtocol
	}

	var sockOpts []socket.Option
	if ln.opts.ReuseAddr {
		sockOpts = append(sockOpts, socket.Option{SetSockOpt: socket.SetReuseAddr, Opt: 1})
	}
	fd, _, err := socket.TCPSocket(ln.network, ln.address, ln.opts.Backlog, sockOpts...)
	if err != nil {
		return err
	}

	// net.FileListener duplicates the descriptor, so the original is always closed here.
	f := os.NewFile(uintptr(fd), fmt.Sprintf("%s:%s", ln.network, ln.address))
	ln.ln, err = net.FileListener(f)
	_ = f.Close()
	if err != nil {
		return err
	}
	ln.addr = ln.ln.Addr()
	return nil
}
