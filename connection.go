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
	"bytes"
	"errors"
	"io"
	"net"

	"github.com/linecho/linecho/pkg/logging"
)

// conn serves a single client connection: it reads bytes into its line buffer,
// writes every complete line back and compacts the buffer before reading again.
type conn struct {
	rwc           net.Conn
	remoteAddr    string
	verbose       bool
	lineBufferCap int
	logger        logging.Logger
	onClose       func()
}

var newline = []byte{'\n'}

func newConn(rwc net.Conn, opts *Options, onClose func()) *conn {
	c := &conn{
		rwc:           rwc,
		verbose:       opts.Verbose,
		lineBufferCap: opts.LineBufferCap,
		logger:        opts.Logger,
		onClose:       onClose,
	}
	if addr := rwc.RemoteAddr(); addr != nil {
		c.remoteAddr = addr.String()
	}
	return c
}

// serve runs the read-echo loop until the peer closes the connection,
// a read fails or a line can't be written back.
func (c *conn) serve() {
	defer c.close()

	buf := newLineBuffer(c.lineBufferCap)
	for {
		n, err := buf.readFrom(c.rwc)
		if n > 0 {
			if werr := c.echoLines(buf); werr != nil {
				c.logger.Errorf("write to %s failed: %v", c.remoteAddr, werr)
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.logger.Errorf("read from %s failed: %v", c.remoteAddr, err)
			}
			return
		}
	}
}

// echoLines writes back every line in buf in order, stopping at the first write error.
func (c *conn) echoLines(buf *lineBuffer) error {
	for {
		line, ok := buf.nextLine()
		if !ok {
			return nil
		}
		if c.verbose {
			c.logger.Infof("Received: %s", bytes.TrimSuffix(line, newline))
		}
		if err := writeFull(c.rwc, line); err != nil {
			return err
		}
		buf.discard(len(line))
	}
}

func (c *conn) close() {
	if err := c.rwc.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		c.logger.Warnf("close connection %s: %v", c.remoteAddr, err)
	}
	if c.onClose != nil {
		c.onClose()
	}
}

// writeFull writes all of p to w, retrying short writes.
func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
