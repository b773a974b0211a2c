// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// bodyHashing checks the HMAC-SHA256 of the request body against the
// HashSHA256 header. It is a pass-through when no hash key is configured.
func (h *Handler) bodyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).With().Str("func", "*Handler.bodyHashing").Logger()

		given, err := hex.DecodeString(r.Header.Get(utils.HashHeader))
		if err != nil || len(given) == 0 {
			log.Error().Msg("request without a valid hash header")
			http.Error(w, ErrMissingBodyHash.Error(), http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !hmac.Equal(given, h.hasher.Sum(body)) {
			log.Error().Str("hash from request", hex.EncodeToString(given)).Msg("hashes are not equal")
			http.Error(w, ErrBodyHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
