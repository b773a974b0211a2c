// Package http implements the REST API of the remote authority.
//
// Routes, all under /api:
//
//	GET    /health       liveness probe used by clients to detect connectivity
//	GET    /version      server build version
//	POST   /sync         upsert a record unless the stored one is newer
//	GET    /data         list every record of the caller
//	GET    /data/{key}   fetch one record
//	DELETE /data/{key}   remove one record
//
// Everything except health and version requires a bearer token. POST bodies
// must carry an HMAC in the HashSHA256 header when a hash key is configured.
// Tracing, access logging and gzip are applied to every route.
package http
