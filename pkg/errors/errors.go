// Copyright (c) 2019 The Gnet Authors. All rights reserved.
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

// Package errors defines common errors for linecho.
package errors

import "errors"

var (
	// ErrEngineShutdown occurs when the server is closing.
	ErrEngineShutdown = errors.New("linecho: server is going to be shutdown")
	// ErrEngineInShutdown occurs when attempting to shut the server down more than once.
	ErrEngineInShutdown = errors.New("linecho: server is already in shutdown")
	// ErrAcceptSocket occurs when the acceptor does not accept the new connection properly.
	ErrAcceptSocket = errors.New("linecho: accept a new connection error")
	// ErrUnsupportedProtocol occurs when trying to use protocol that is not supported.
	ErrUnsupportedProtocol = errors.New("linecho: only tcp/tcp4/tcp6 are supported")
	// ErrUnsupportedTCPProtocol occurs when the resolved address does not match the TCP protocol.
	ErrUnsupportedTCPProtocol = errors.New("linecho: resolved address does not match the requested tcp network")
	// ErrInvalidPort occurs when the listening port is out of the range 1-65535.
	ErrInvalidPort = errors.New("linecho: invalid port number")
	// ErrInvalidMaxConns occurs when the connection cap is negative.
	ErrInvalidMaxConns = errors.New("linecho: invalid max connections")
	// ErrPoolOverload occurs when the connection cap is reached and a new connection is refused.
	ErrPoolOverload = errors.New("linecho: too many connections")
)
