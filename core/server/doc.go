// Package server holds the HTTP server configuration.
//
// The serve command exposes the peering reconciliation over HTTP. The Config
// struct defines the listen port, the optional API key and the metrics path.
package server
