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

// Command linecho runs a line-oriented TCP echo server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/linecho/linecho"
	errorx "github.com/linecho/linecho/pkg/errors"
	"github.com/linecho/linecho/pkg/logging"
)

const defaultPort = 2345

type config struct {
	port     int
	verbose  bool
	backlog  int
	maxConns int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, code, ok := parseArgs(args, stdout, stderr)
	if !ok {
		return code
	}
	defer logging.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := linecho.Run(ctx, fmt.Sprintf("tcp4://:%d", cfg.port),
		linecho.WithVerbose(cfg.verbose),
		linecho.WithBacklog(cfg.backlog),
		linecho.WithReuseAddr(true),
		linecho.WithMaxConns(cfg.maxConns),
		linecho.WithLogger(logging.GetDefaultLogger()))
	if err != nil {
		logging.Errorf("linecho server exits with error: %v", err)
		return 1
	}
	logging.Infof("linecho server on port %d stopped", cfg.port)
	return 0
}

// parseArgs parses the command line. When ok is false the process must exit
// with code right away, no socket has been touched at that point.
func parseArgs(args []string, stdout, stderr io.Writer) (cfg config, code int, ok bool) {
	fs := flag.NewFlagSet("linecho", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-p port] [-v] [-b backlog] [-m max-conns]\n", fs.Name())
		fs.PrintDefaults()
	}

	var (
		port string
		help bool
	)
	fs.StringVar(&port, "p", strconv.Itoa(defaultPort), "port to listen on (1-65535)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every echoed line")
	fs.BoolVar(&help, "h", false, "print this help and exit")
	fs.IntVar(&cfg.backlog, "b", 1, "listen backlog, 0 or less for the system maximum")
	fs.IntVar(&cfg.maxConns, "m", 0, "max concurrent connections, 0 for no limit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, 0, false
		}
		return cfg, 2, false
	}
	if help {
		fs.SetOutput(stdout)
		fs.Usage()
		return cfg, 0, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return cfg, 2, false
	}

	var err error
	if cfg.port, err = parsePort(port); err != nil {
		fmt.Fprintf(stderr, "Invalid port number: %s\n", port)
		return cfg, 1, false
	}
	if cfg.maxConns < 0 {
		fmt.Fprintf(stderr, "%v: %d\n", errorx.ErrInvalidMaxConns, cfg.maxConns)
		return cfg, 1, false
	}
	return cfg, 0, true
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errorx.ErrInvalidPort, err)
	}
	if port < 1 || port > 65535 {
		return 0, errorx.ErrInvalidPort
	}
	return port, nil
}
