// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records and keys before they reach storage,
// on the server for incoming sync requests and on the client for keys
// passed to save, load and delete.
package validators

import "context"

// Validator checks obj and returns a validation error for the first
// violation. fields, when given, limits which fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
