package reconcile

import (
	"fmt"

	"peerdiff/feature/peering/models"
)

// Stanza renders the suggested RPSL policy for a peer missing from the registry.
// The export always announces defaultSet, whatever the router really announces.
func Stanza(asn uint32, info models.AsInfo, defaultSet string) string {
	announced := info.AnnouncedSet
	if announced == "" {
		announced = models.AnySet
	}
	return fmt.Sprintf("remarks: ----- %s\nimport: from AS%d accept %s\nexport: to AS%d announce %s",
		info.Name, asn, announced, asn, defaultSet)
}
