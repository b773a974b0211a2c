// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus describes how far a local [Record] has progressed towards the
// remote authority.
type SyncStatus string

const (
	// SyncStatusPending marks a record written locally and not yet
	// acknowledged by the remote authority.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced marks a record whose current version was accepted by
	// the remote authority (or adopted from it).
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusError marks a record whose sync attempts were exhausted.
	// Only a new local write moves it back to pending.
	SyncStatusError SyncStatus = "error"
)

// IsValid reports whether s is one of the known statuses.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSynced, SyncStatusError:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	return string(s)
}

// Record is the unit of local storage. Exactly one record exists per key.
type Record struct {
	// Key is the caller-chosen identifier of the value.
	Key string `json:"key"`

	// Payload holds the compressed JSON encoding of the stored value.
	Payload []byte `json:"data"`

	// LastModified is the wall-clock time of the last local write, in unix
	// milliseconds. It is the sole ordering signal used to resolve conflicts.
	LastModified int64 `json:"lastModified"`

	// SyncStatus tells whether the current version reached the remote
	// authority.
	SyncStatus SyncStatus `json:"syncStatus"`
}

// IsNewerThan reports whether r was modified strictly after other.
func (r Record) IsNewerThan(other Record) bool {
	return r.LastModified > other.LastModified
}
