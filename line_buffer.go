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
	"io"
)

// DefaultLineBufferCap is the default capacity of the per-connection line buffer.
const DefaultLineBufferCap = 1024

// lineBuffer holds the bytes of a connection that have been read but not yet echoed.
// It never grows: bytes are appended after the valid region and every extracted line
// is removed from the front by sliding the remainder down.
type lineBuffer struct {
	buf []byte
	n   int // number of valid bytes in buf
}

func newLineBuffer(capacity int) *lineBuffer {
	if capacity <= 0 {
		capacity = DefaultLineBufferCap
	}
	return &lineBuffer{buf: make([]byte, capacity)}
}

// readFrom performs a single Read from r into the free tail of the buffer.
func (b *lineBuffer) readFrom(r io.Reader) (int, error) {
	n, err := r.Read(b.buf[b.n:])
	if n > 0 {
		b.n += n
	}
	return n, err
}

// nextLine returns the first line in the buffer, including its '\n'.
// If there is no '\n' and the buffer is full, the last byte is overwritten
// with '\n' and the whole buffer is returned as a line.
// The returned slice aliases the buffer and is only valid until the next discard.
func (b *lineBuffer) nextLine() ([]byte, bool) {
	if i := bytes.IndexByte(b.buf[:b.n], '\n'); i >= 0 {
		return b.buf[:i+1], true
	}
	if b.n == len(b.buf) {
		b.buf[b.n-1] = '\n'
		return b.buf[:b.n], true
	}
	return nil, false
}

// discard drops the first n bytes and moves the rest to the front.
func (b *lineBuffer) discard(n int) {
	if n >= b.n {
		b.n = 0
		return
	}
	b.n = copy(b.buf, b.buf[n:b.n])
}
