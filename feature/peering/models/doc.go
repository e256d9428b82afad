// Package models defines the peer records shared by the extractors, the store and
// the reconciler.
//
// RouterPeer and RegistryPeer map onto the two store relations ("router" and
// "whois"), both keyed by AS number. AsInfo is derived on demand from a registry
// query and never persisted.
package models
