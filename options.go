// Copyright (c) 2019 Andy Pan
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

import "github.com/linecho/linecho/pkg/logging"

// Option is a function that will set up option.
type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	return opts
}

// Options are configurations for the linecho server.
type Options struct {
	// Verbose indicates whether every echoed line is logged at INFO level.
	Verbose bool

	// Backlog is the maximum length of the queue of pending connections on the
	// listening socket, a non-positive value means the maximum allowed by the system.
	Backlog int

	// ReuseAddr indicates whether to set up the SO_REUSEADDR socket option.
	ReuseAddr bool

	// LineBufferCap is the capacity in bytes of the per-connection line buffer,
	// a line longer than that is cut, see the package documentation.
	// DefaultLineBufferCap is used when it's not positive.
	LineBufferCap int

	// MaxConns caps the number of connections being served at the same time,
	// connections accepted beyond it are closed right away. Zero means no cap.
	MaxConns int

	// Logger is the customized logger for logging info, if it is not set,
	// then linecho will use the default logger powered by go.uber.org/zap.
	Logger logging.Logger
}

// WithOptions sets up all options.
func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

// WithVerbose enables logging of every echoed line.
func WithVerbose(verbose bool) Option {
	return func(opts *Options) {
		opts.Verbose = verbose
	}
}

// WithBacklog sets up the listen backlog.
func WithBacklog(backlog int) Option {
	return func(opts *Options) {
		opts.Backlog = backlog
	}
}

// WithReuseAddr sets up SO_REUSEADDR socket option.
func WithReuseAddr(reuseAddr bool) Option {
	return func(opts *Options) {
		opts.ReuseAddr = reuseAddr
	}
}

// WithLineBufferCap sets up the capacity of the per-connection line buffer.
func WithLineBufferCap(lineBufferCap int) Option {
	return func(opts *Options) {
		opts.LineBufferCap = lineBufferCap
	}
}

// WithMaxConns sets up the cap of concurrent connections.
func WithMaxConns(maxConns int) Option {
	return func(opts *Options) {
		opts.MaxConns = maxConns
	}
}

// WithLogger sets up a customized logger.
func WithLogger(logger logging.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
