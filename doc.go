/*
Package linecho implements a line-oriented TCP echo server.

A linecho server accepts concurrent TCP connections and writes every complete
line it receives, that is every run of bytes terminated by '\n', back to the
connection it came from, verbatim and in order. Each connection is handled by
its own goroutine with a private, fixed-capacity line buffer; connections
share no state with one another.

A line that does not fit into the line buffer is cut: when the buffer fills up
without a newline, its last byte is replaced with '\n' and the buffered bytes
are echoed as one line. The replaced byte is lost.

A minimal server:

	package main

	import (
		"context"
		"log"

		"github.com/linecho/linecho"
	)

	func main() {
		log.Fatal(linecho.Run(context.Background(), "tcp4://:2345", linecho.WithVerbose(true)))
	}
*/
package linecho
