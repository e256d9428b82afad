package peering

// Config holds the operator-specific settings of a reconciliation.
type Config struct {
	// Asno is the operator's own AS number, with or without the "AS" prefix.
	Asno string `mapstructure:"asno" default:"12345" validate:"required,alphanum"`
	// DefaultSet is announced in every suggested export stanza.
	DefaultSet string `mapstructure:"default_set" default:"ANY" validate:"required"`
	// Sources lists router configuration identifiers (paths or s3://bucket/key).
	Sources []string `mapstructure:"sources" default:"/usr/local/etc/quagga/bgpd.conf" validate:"required,min=1,dive,required"`
	// LookupCacheSeconds keeps per-peer registry lookups between runs of a long-lived server.
	LookupCacheSeconds int `mapstructure:"lookup_cache_seconds" default:"3600"`
}
