package rpsl

import (
	"context"
	"fmt"

	"peerdiff/core/registry"
	"peerdiff/core/utils"
	"peerdiff/feature/peering/models"
)

// Registry queries a routing registry and extracts peering data from its answers.
type Registry struct {
	client registry.Client
	server string
}

// NewRegistry creates a Registry that sends every query to server.
func NewRegistry(client registry.Client, server string) *Registry {
	return &Registry{client: client, server: server}
}

// Server returns the whois server this registry queries.
func (r *Registry) Server() string {
	return r.server
}

// FetchImports queries the operator's own aut-num object and returns its imports.
func (r *Registry) FetchImports(ctx context.Context, selfAsno string) ([]models.RegistryPeer, error) {
	target := "AS" + utils.TrimASPrefix(selfAsno)
	text, err := r.client.Query(ctx, target, r.server)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", target, err)
	}
	return ExtractImports(text, selfAsno), nil
}

// LookupAsInfo queries the aut-num object of asn. On failure it returns the
// defaulted AsInfo together with the error.
func (r *Registry) LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error) {
	target := utils.FormatASN(asn)
	text, err := r.client.Query(ctx, target, r.server)
	if err != nil {
		return models.AsInfo{AnnouncedSet: models.AnySet}, fmt.Errorf("failed to query %s: %w", target, err)
	}
	return ParseAsInfo(text, asn, selfAsno), nil
}
