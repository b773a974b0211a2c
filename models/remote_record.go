// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteRecord is the authoritative copy of a record kept by the server,
// scoped to a single user.
type RemoteRecord struct {
	// UserID is the owner, taken from the bearer token subject.
	// Never serialized; ownership is implied by the authenticated request.
	UserID string `json:"-"`

	Key          string `json:"key"`
	Data         []byte `json:"data"`
	LastModified int64  `json:"lastModified"`

	// CreatedAt and UpdatedAt are server-side bookkeeping only.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ToRecord converts the remote copy into a local record that is already in
// sync with the server.
func (r RemoteRecord) ToRecord() Record {
	return Record{
		Key:          r.Key,
		Payload:      r.Data,
		LastModified: r.LastModified,
		SyncStatus:   SyncStatusSynced,
	}
}
