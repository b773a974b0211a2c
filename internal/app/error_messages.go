// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when a sync request fails
	// validation, e.g. an empty key or a missing timestamp.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not a JSON document
	// of the expected shape.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a request declares gzip encoding but
	// its body cannot be decompressed.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned for storage failures that are
	// expected to clear up, so the client should retry later.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT subject) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRecordNotFound is returned when the requested key has no record
	// for the authenticated user.
	MsgRecordNotFound = "record not found"
)
