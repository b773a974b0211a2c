package models

// RecordsResponse is returned by GET /api/data/ and lists every record the
// user owns on the server.
type RecordsResponse struct {
	Records []RemoteRecord `json:"records"`

	// Length is len(Records), provided so the client can pre-allocate.
	Length int `json:"length"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
