// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoTransports is returned by NewServer when the handlers carry
	// neither an HTTP router nor a gRPC handler.
	ErrNoTransports = errors.New("no transports to serve")
)
