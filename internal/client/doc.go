// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the sync client.
//
// It builds the local store, the record cache, the remote authority adapter,
// the connectivity monitor and the sync scheduler from a [config.ClientConfig]
// and exposes them through [App]: a local-first storage API plus a small
// command set used by cmd/client.
package client
