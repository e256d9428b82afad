package cmd

import (
	"fmt"
	"strings"

	"peerdiff/core/config"
	"peerdiff/core/metrics"
	"peerdiff/core/registry"
	"peerdiff/core/source"
	"peerdiff/core/storage"
	"peerdiff/feature/peering"
	"peerdiff/feature/peering/rpsl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// newService wires the peering service from cfg.
// The object storage client is only created when a source lives in object storage.
func newService(cfg *config.Config, opener peering.Opener, reg prometheus.Registerer, l *zap.Logger) (*peering.Service, error) {
	client, err := registry.New(cfg.Registry)
	if err != nil {
		return nil, err
	}

	var objects storage.Client
	if needsStorage(cfg.Peering.Sources) {
		objects, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	return peering.NewService(
		cfg.Peering,
		source.NewReader(afero.NewOsFs(), objects),
		rpsl.NewRegistry(client, cfg.Registry.Server),
		opener,
		metrics.New(reg),
		l,
	), nil
}

func needsStorage(sources []string) bool {
	for _, s := range sources {
		if strings.HasPrefix(s, source.S3Scheme) {
			return true
		}
	}
	return false
}
