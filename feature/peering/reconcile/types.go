package reconcile

import (
	"context"

	"peerdiff/feature/peering/models"
)

// FindingKind tags a discrepancy with the source the peer is missing from.
type FindingKind string

const (
	// KindRouterOnly marks a neighbor configured on the router but absent from the registry.
	KindRouterOnly FindingKind = "router_only"
	// KindRegistryOnly marks a registry import without a configured neighbor.
	KindRegistryOnly FindingKind = "registry_only"
)

// ReviewCaveat closes every report that has discrepancies.
const ReviewCaveat = "Review these results manually before submitting anything to a registry: " +
	"internal (iBGP) peers and peers without an explicit export filter (accept ANY) are likely false positives."

// Finding is one peer present in a single source only.
type Finding struct {
	Kind FindingKind `json:"kind"`
	ASN  uint32      `json:"asno"`

	// NeighborAddress, PeerGroup and Description are set for router-only findings.
	NeighborAddress string `json:"neighbor_address,omitempty"`
	PeerGroup       string `json:"peer_group,omitempty"`
	Description     string `json:"description,omitempty"`

	// Accept is the registered accept expression of a registry-only finding.
	Accept string `json:"accept,omitempty"`

	// Info and Stanza are the suggested registry policy for a router-only finding.
	Info   *models.AsInfo `json:"as_info,omitempty"`
	Stanza string         `json:"stanza,omitempty"`

	// LookupError records why Info fell back to defaults.
	LookupError string `json:"lookup_error,omitempty"`
}

// Match is a peer present in both sources.
type Match struct {
	ASN             uint32 `json:"asno"`
	NeighborAddress string `json:"neighbor_address"`
	PeerGroup       string `json:"peer_group,omitempty"`
	Accept          string `json:"accept"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	RouterPeers   int `json:"router_peers"`
	RegistryPeers int `json:"registry_peers"`
	Matched       int `json:"matched"`
	RouterOnly    int `json:"router_only"`
	RegistryOnly  int `json:"registry_only"`
	// Discrepancies is RouterOnly + RegistryOnly.
	Discrepancies int `json:"discrepancies"`
}

// Report is the outcome of one reconciliation pass.
type Report struct {
	// Findings lists router-only findings then registry-only findings, each by ASN.
	Findings []Finding `json:"findings"`
	Matched  []Match   `json:"matched"`
	Summary  Summary   `json:"summary"`

	// NoDifferences is true when both relations hold the same ASN set.
	NoDifferences bool `json:"no_differences"`
	// Caveat is set whenever there are discrepancies.
	Caveat string `json:"caveat,omitempty"`
}

// Options controls a reconciliation pass.
type Options struct {
	// SelfAsno is the operator's AS number.
	SelfAsno string
	// DefaultSet is announced in every suggested export stanza.
	DefaultSet string
	// SkipLookup disables per-peer registry lookups; stanzas then use the defaults.
	SkipLookup bool
}

// PeerJoiner is the read side of the peer store.
type PeerJoiner interface {
	JoinRouterLeftOfRegistry(ctx context.Context) ([]models.RouterJoinRow, error)
	JoinRegistryLeftOfRouter(ctx context.Context) ([]models.RegistryJoinRow, error)
}

// InfoLookup retrieves registry information about a single peer AS.
type InfoLookup interface {
	LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error)
}
