// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoTransportsConfigured is returned by NewHandlers when the server
// config sets neither an HTTP nor a gRPC address. The server would have
// nothing to listen on, so this fails startup.
var ErrNoTransportsConfigured = errors.New("neither HTTP nor gRPC address is configured")
