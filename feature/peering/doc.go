// Package peering implements the BGP peering reconciliation feature.
//
// It compares two independently maintained descriptions of the operator's peers:
//  1. Router configuration: the neighbor statements actually configured.
//  2. Routing registry: the import policies published in the operator's aut-num object.
//
// # Pipeline
//
// A run extracts peers from every configured router source (package router) and
// from the registry (package rpsl) into a two-relation store (package store), then
// correlates both relations by AS number (package reconcile).
//
// # Failure handling
//
//   - An unreadable router source aborts the run (ErrFatalInput).
//   - A store that cannot be opened aborts the run (ErrStoreUnavailable).
//   - A registry failure never aborts: the bulk import yields zero peers and
//     per-peer lookups fall back to defaults.
//
// The store is torn down on every exit path.
//
// # HTTP Endpoints
//
//   - GET /peering/diff : Runs a full reconciliation (supports ?lookup=false and ?default_set=).
//   - GET /peering/asinfo/:asn : Registry name, announced set and suggested stanza for one AS.
package peering
