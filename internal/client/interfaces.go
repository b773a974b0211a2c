// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args, writing results to out. It blocks
	// until the command is done or ctx is cancelled.
	Run(ctx context.Context, args []string, out io.Writer) error

	// Close stops background work and releases the local store.
	Close() error
}
