package router

import (
	"testing"

	"peerdiff/feature/peering/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const bgpdConf = `!
router bgp 64496
 bgp router-id 192.0.2.254
 neighbor TRANSIT peer-group
 neighbor TRANSIT remote-as 64999
 neighbor 192.0.2.1 peer-group TRANSIT
 neighbor 192.0.2.1 remote-as 64500
 neighbor 192.0.2.1 description upstream-a
 neighbor 2001:DB8::2 remote-as 64501
 neighbor 198.51.100.7 remote-as 64502
 neighbor 2001:db8::2 peer-group IX
!
`

func TestExtract(t *testing.T) {
	got := Extract(bgpdConf)
	want := []models.RouterPeer{
		{ASN: 64500, NeighborAddress: "192.0.2.1", PeerGroup: "TRANSIT", Description: "upstream-a"},
		{ASN: 64501, NeighborAddress: "2001:db8::2", PeerGroup: "IX"},
		{ASN: 64502, NeighborAddress: "198.51.100.7"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_CountMatchesDistinctNeighbors(t *testing.T) {
	text := " neighbor 192.0.2.1 remote-as 64500\n" +
		"neighbor 192.0.2.2 remote-as 64501\n" +
		"\tneighbor 192.0.2.3   remote-as   64502\r\n"
	assert.Len(t, Extract(text), 3)
}

func TestExtract_PeerGroupBeforeOrAfter(t *testing.T) {
	before := " neighbor 192.0.2.1 peer-group A\n neighbor 192.0.2.1 remote-as 64500\n"
	after := " neighbor 192.0.2.1 remote-as 64500\n neighbor 192.0.2.1 peer-group A\n"

	assert.Equal(t, "A", Extract(before)[0].PeerGroup)
	assert.Equal(t, "A", Extract(after)[0].PeerGroup)
}

func TestExtract_PeerGroupMatchesExactAddress(t *testing.T) {
	text := " neighbor 192.0.2.1 remote-as 64500\n neighbor 192.0.2.10 peer-group OTHER\n"
	peers := Extract(text)
	assert.Len(t, peers, 1)
	assert.Equal(t, "", peers[0].PeerGroup)
}

func TestExtract_LastPeerGroupWins(t *testing.T) {
	text := " neighbor 192.0.2.1 peer-group A\n neighbor 192.0.2.1 remote-as 64500\n neighbor 192.0.2.1 peer-group B\n"
	assert.Equal(t, "B", Extract(text)[0].PeerGroup)
}

func TestExtract_KeepsDuplicates(t *testing.T) {
	text := " neighbor 192.0.2.1 remote-as 64500\n neighbor 192.0.2.9 remote-as 64500\n"
	peers := Extract(text)
	assert.Len(t, peers, 2)
	assert.Equal(t, "192.0.2.1", peers[0].NeighborAddress)
}

func TestExtract_Ignores(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Peer-group name", " neighbor CUSTOMERS remote-as 64500\n"},
		{"Zero ASN", " neighbor 192.0.2.1 remote-as 0\n"},
		{"ASN overflow", " neighbor 192.0.2.1 remote-as 4294967296\n"},
		{"Comment", "! neighbor 192.0.2.1 remote-as 64500\n"},
		{"Trailing garbage", " neighbor 192.0.2.1 remote-as 64500 extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Extract(tt.text))
		})
	}
}
