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

package linecho

import (
	"net"
	"sync"
)

type listener struct {
	once    sync.Once
	ln      net.Listener
	addr    net.Addr
	network string
	address string
	opts    *Options
}

func (ln *listener) close() (err error) {
	ln.once.Do(func() {
		if ln.ln != nil {
			err = ln.ln.Close()
		}
	})
	return
}

func initListener(network, address string, opts *Options) (l *listener, err error) {
	l = &listener{network: network, address: address, opts: opts}
	err = l.normalize()
	return
}
