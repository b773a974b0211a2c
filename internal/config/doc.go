// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the remote authority server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, with *_FILE variants for secrets
//  2. JSON config file, named by CONFIG or -c
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both
// are views over [GetStructuredConfig].
package config
