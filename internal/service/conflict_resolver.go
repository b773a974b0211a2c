package service

import "github.com/MKhiriev/go-sync-keeper/models"

// ConflictResolver decides which of two versions of a record is
// authoritative. remote is nil when the server has no copy.
type ConflictResolver interface {
	Resolve(local models.Record, remote *models.Record) Resolution
}

// Resolution is the outcome of comparing a local record with its remote copy.
type Resolution struct {
	// Record is the authoritative version.
	Record models.Record
	// FromRemote is true when Record came from the remote authority and the
	// local store has to adopt it.
	FromRemote bool
}

// LastWriteWins resolves conflicts on whole records by LastModified.
type LastWriteWins struct{}

func NewLastWriteWins() ConflictResolver {
	return LastWriteWins{}
}

// Resolve returns remote only if it exists and is strictly newer. Ties keep
// the local record, and a missing remote never implies a deletion.
func (LastWriteWins) Resolve(local models.Record, remote *models.Record) Resolution {
	if remote != nil && remote.IsNewerThan(local) {
		return Resolution{Record: *remote, FromRemote: true}
	}
	return Resolution{Record: local}
}
