// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request checking middlewares. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingBodyHash is returned when body hashing is enabled and the
	// request carries no HashSHA256 header.
	ErrMissingBodyHash = errors.New("missing `HashSHA256` header")

	// ErrBodyHashMismatch is returned when the HashSHA256 header does not
	// match the request body.
	ErrBodyHashMismatch = errors.New("integrity check failed")

	// ErrInvalidKey is returned for a {key} path segment that cannot be
	// unescaped.
	ErrInvalidKey = errors.New("invalid key in path")
)
