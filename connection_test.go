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
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

// servePipe starts a handler on one end of an in-memory pipe and returns the other end.
func servePipe(t *testing.T, opts *Options) (net.Conn, <-chan struct{}) {
	t.Helper()
	server, client := net.Pipe()
	done := make(chan struct{})
	c := newConn(server, opts, func() { close(done) })
	go c.serve()
	t.Cleanup(func() {
		_ = client.Close()
		<-done
	})
	return client, done
}

func readN(t *testing.T, r io.Reader, n int) string {
	t.Helper()
	buf := make([]byte, n)
	_, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	return string(buf)
}

func TestConn_RoundTrip(t *testing.T) {
	logger, logs := newObservedLogger()
	client, _ := servePipe(t, &Options{Logger: logger})

	_, err := client.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", readN(t, client, 6))
	assert.Zero(t, logs.Len(), "nothing is logged unless verbose")
}

func TestConn_MultipleLinesInOneWrite(t *testing.T) {
	client, _ := servePipe(t, &Options{Logger: zap.NewNop().Sugar()})

	_, err := client.Write([]byte("a\nb\nc\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", readN(t, client, 6))
}

func TestConn_SplitAcrossWrites(t *testing.T) {
	client, _ := servePipe(t, &Options{Logger: zap.NewNop().Sugar()})

	_, err := client.Write([]byte("he"))
	require.NoError(t, err)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
	_, err = client.Read(make([]byte, 1))
	require.ErrorIs(t, err, os.ErrDeadlineExceeded, "an incomplete line must not be echoed")
	require.NoError(t, client.SetReadDeadline(time.Time{}))

	_, err = client.Write([]byte("llo\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", readN(t, client, 6))
}

func TestConn_ForcedBreak(t *testing.T) {
	client, _ := servePipe(t, &Options{LineBufferCap: 8, Logger: zap.NewNop().Sugar()})

	errCh := make(chan error, 1)
	go func() {
		_, err := client.Write([]byte("abcdefghij\n"))
		errCh <- err
	}()
	assert.Equal(t, "abcdefg\nij\n", readN(t, client, 11))
	require.NoError(t, <-errCh)
}

func TestConn_VerboseLogging(t *testing.T) {
	logger, logs := newObservedLogger()
	client, _ := servePipe(t, &Options{Verbose: true, Logger: logger})

	_, err := client.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", readN(t, client, 8))

	entries := logs.FilterMessageSnippet("Received: ").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Received: one", entries[0].Message)
	assert.Equal(t, "Received: two", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestConn_PeerClose(t *testing.T) {
	logger, logs := newObservedLogger()
	client, done := servePipe(t, &Options{Logger: logger})

	_, err := client.Write([]byte("unterminated"))
	require.NoError(t, err)
	require.NoError(t, client.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after the peer closed the connection")
	}
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len(), "EOF is not an error")
}

// scriptedConn replays reads from a script and records writes.
type scriptedConn struct {
	net.Conn

	reads    [][]byte
	readErr  error
	written  bytes.Buffer
	writeErr error
	maxWrite int
	closed   bool
}

func (c *scriptedConn) Read(p []byte) (int, error) {
	if len(c.reads) == 0 {
		return 0, c.readErr
	}
	n := copy(p, c.reads[0])
	c.reads = c.reads[1:]
	if len(c.reads) == 0 && c.readErr != nil {
		return n, c.readErr
	}
	return n, nil
}

func (c *scriptedConn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	if c.maxWrite > 0 && len(p) > c.maxWrite {
		p = p[:c.maxWrite]
	}
	return c.written.Write(p)
}

func (c *scriptedConn) Close() error {
	c.closed = true
	return nil
}

func (c *scriptedConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}
}

func TestConn_ShortWrites(t *testing.T) {
	sc := &scriptedConn{
		reads:    [][]byte{[]byte("first line\nsecond line\n")},
		readErr:  io.EOF,
		maxWrite: 3,
	}
	closed := false
	newConn(sc, &Options{Logger: zap.NewNop().Sugar()}, func() { closed = true }).serve()

	assert.Equal(t, "first line\nsecond line\n", sc.written.String())
	assert.True(t, sc.closed)
	assert.True(t, closed)
}

func TestConn_WriteErrorAbortsConnection(t *testing.T) {
	logger, logs := newObservedLogger()
	sc := &scriptedConn{
		reads:    [][]byte{[]byte("a\nb\n"), []byte("c\n")},
		writeErr: errors.New("broken pipe"),
	}
	newConn(sc, &Options{Logger: logger}, nil).serve()

	assert.True(t, sc.closed)
	assert.Zero(t, sc.written.Len())
	assert.Len(t, sc.reads, 1, "no more reads after a failed write")
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "write to 127.0.0.1:4242 failed: broken pipe")
}

func TestConn_ReadErrorAfterData(t *testing.T) {
	logger, logs := newObservedLogger()
	sc := &scriptedConn{
		reads:   [][]byte{[]byte("last\n")},
		readErr: errors.New("connection reset by peer"),
	}
	newConn(sc, &Options{Logger: logger}, nil).serve()

	assert.Equal(t, "last\n", sc.written.String(), "bytes read along with an error are still echoed")
	assert.True(t, sc.closed)
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].Message, "read from 127.0.0.1:4242 failed"))
}

type zeroWriter struct{}

func (zeroWriter) Write([]byte) (int, error) { return 0, nil }

func TestWriteFull(t *testing.T) {
	sc := &scriptedConn{maxWrite: 1}
	require.NoError(t, writeFull(sc, []byte("byte by byte\n")))
	assert.Equal(t, "byte by byte\n", sc.written.String())

	assert.ErrorIs(t, writeFull(zeroWriter{}, []byte("x")), io.ErrShortWrite)

	werr := errors.New("write failed")
	assert.ErrorIs(t, writeFull(&scriptedConn{writeErr: werr}, []byte("x")), werr)

	assert.NoError(t, writeFull(zeroWriter{}, nil))
}
