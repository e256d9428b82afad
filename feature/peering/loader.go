package peering

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface for peering reconciliation.
type Feature struct {
	service *Service
}

// NewFeature creates a new peering feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "peering"
}

// IsEnabled reports whether the feature can serve requests.
func (f *Feature) IsEnabled() bool {
	return f.service != nil && f.service.registry != nil
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
