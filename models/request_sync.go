// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRequest is the body of POST /api/sync. The client pushes one record
// per request; the server keeps whichever version carries the greater
// LastModified.
type SyncRequest struct {
	// Key identifies the record within the user's namespace.
	Key string `json:"key"`

	// Data is the compressed payload exactly as stored locally.
	// Encoded as base64 on the wire.
	Data []byte `json:"data"`

	// LastModified is the local write time in unix milliseconds.
	LastModified int64 `json:"lastModified"`
}

// ToRecord converts the request into a pending local record.
func (r SyncRequest) ToRecord() Record {
	return Record{
		Key:          r.Key,
		Payload:      r.Data,
		LastModified: r.LastModified,
		SyncStatus:   SyncStatusPending,
	}
}
