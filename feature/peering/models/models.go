package models

// UnknownAccept is stored when a registry import line carries no accept clause.
const UnknownAccept = "Unknown"

// AnySet is the announced-set fallback when a peer publishes no export towards us.
const AnySet = "ANY"

// RouterPeer is a BGP neighbor declared in the router configuration.
type RouterPeer struct {
	ASN             uint32 `gorm:"column:asno;primaryKey;autoIncrement:false" json:"asno"`
	NeighborAddress string `gorm:"column:ip;size:255" json:"neighbor_address"`
	PeerGroup       string `gorm:"column:peer_group;size:255" json:"peer_group"`
	Description     string `gorm:"column:description;size:255" json:"description,omitempty"`
}

// TableName overrides the table name for router peers.
func (RouterPeer) TableName() string {
	return "router"
}

// Label returns the peer-group, or the description when no peer-group is set.
func (p RouterPeer) Label() string {
	if p.PeerGroup != "" {
		return p.PeerGroup
	}
	return p.Description
}

// RegistryPeer is an import policy published in the operator's aut-num object.
type RegistryPeer struct {
	ASN              uint32 `gorm:"column:asno;primaryKey;autoIncrement:false" json:"asno"`
	AcceptExpression string `gorm:"column:accept;size:255" json:"accept"`
}

// TableName overrides the table name for registry peers.
func (RegistryPeer) TableName() string {
	return "whois"
}

// AsInfo is what the registry says about a peer AS, relative to the operator.
type AsInfo struct {
	// Name comes from the peer's descr (or as-name) attribute.
	Name string `json:"name"`
	// AnnouncedSet is what the peer exports to the operator, AnySet when unknown.
	AnnouncedSet string `json:"announced_set"`
}

// RouterJoinRow is one row of router LEFT JOIN whois.
type RouterJoinRow struct {
	RouterPeer
	// Accept is nil when the registry has no import for this ASN.
	Accept *string `gorm:"column:accept"`
}

// RegistryJoinRow is one row of whois LEFT JOIN router.
type RegistryJoinRow struct {
	RegistryPeer
	// Router is nil when the router configuration has no neighbor for this ASN.
	Router *RouterPeer `gorm:"-"`
}
