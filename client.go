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
	"bufio"
	"net"
	"time"

	"github.com/valyala/bytebufferpool"
)

// Client is a blocking client for a line echo server.
type Client struct {
	conn net.Conn
	rd   *bufio.Reader
}

// Dial connects to the line echo server at address on the named network.
func Dial(network, address string) (*Client, error) {
	return DialTimeout(network, address, 0)
}

// DialTimeout acts like Dial but takes a timeout for establishing the connection.
func DialTimeout(network, address string, timeout time.Duration) (*Client, error) {
	c, err := net.DialTimeout(network, address, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c, rd: bufio.NewReader(c)}, nil
}

// Write sends p as is, it doesn't need to end with a newline.
func (c *Client) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

// WriteLine sends line followed by a newline.
func (c *Client) WriteLine(line string) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	_, _ = bb.WriteString(line)
	_ = bb.WriteByte('\n')
	return writeFull(c.conn, bb.B)
}

// ReadLine reads the next echoed line, including its newline, of any length.
func (c *Client) ReadLine() ([]byte, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	for {
		frag, err := c.rd.ReadSlice('\n')
		_, _ = bb.Write(frag)
		if err == nil {
			break
		}
		if err != bufio.ErrBufferFull {
			return nil, err
		}
	}
	line := make([]byte, bb.Len())
	copy(line, bb.B)
	return line, nil
}

// SetReadDeadline sets the deadline for future ReadLine calls.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// CloseWrite shuts down the writing side of the connection, the server
// sees the end of the stream while echoed lines can still be read.
func (c *Client) CloseWrite() error {
	if tc, ok := c.conn.(*net.TCPConn); ok {
		return tc.CloseWrite()
	}
	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
