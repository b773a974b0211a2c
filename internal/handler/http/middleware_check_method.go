// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// methodNotServed is registered as the router's MethodNotAllowed handler. It
// answers 404 instead of chi's 405 so that a caller using the wrong method
// cannot tell which record routes exist.
//
//	router.MethodNotAllowed(methodNotServed)
func methodNotServed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this path")

	http.NotFound(w, r)
}
