package peering

import (
	"errors"

	"peerdiff/core/registry"
)

var (
	// ErrFatalInput aborts a run: a configured router configuration could not be read.
	ErrFatalInput = errors.New("router configuration unreadable")
	// ErrStoreUnavailable aborts a run: the peer store could not be opened.
	ErrStoreUnavailable = errors.New("peer store unavailable")
	// ErrLookup marks a registry query failure. It never aborts a run.
	ErrLookup = registry.ErrLookup
)
