// Package server runs the remote authority's transports.
//
// [NewServer] builds an HTTP server for the record API and, when a gRPC
// address is configured, a gRPC server exposing the health service.
// [Server.RunServer] runs them together until SIGINT, SIGTERM or SIGQUIT, or
// until one of them fails, and then shuts all of them down gracefully.
package server
