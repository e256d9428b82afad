package rpsl

import (
	"testing"

	"peerdiff/feature/peering/models"

	"github.com/stretchr/testify/assert"
)

const selfObject = `% This is the RIPE Database query service.

import:         from AS65000 accept AS-BEFORE

% Information related to 'AS64496'

aut-num:        AS64496
as-name:        EXAMPLE-NET
descr:          Example Networks
import:         from AS64500 accept AS-TRANSIT-A
import:         from AS64501 action pref=100; accept AS-IX-B  # via IX
import:         from AS64502
export:         to AS64500 announce AS-EXAMPLE
mnt-by:         EXAMPLE-MNT
source:         RIPE

aut-num:        AS64999
import:         from AS65001 accept ANY
`

func TestExtractImports(t *testing.T) {
	got := ExtractImports(selfObject, "64496")
	want := []models.RegistryPeer{
		{ASN: 64500, AcceptExpression: "AS-TRANSIT-A"},
		{ASN: 64501, AcceptExpression: "AS-IX-B"},
		{ASN: 64502, AcceptExpression: models.UnknownAccept},
	}
	assert.Equal(t, want, got)
}

func TestExtractImports_SkipsHierarchicalSets(t *testing.T) {
	text := "aut-num: AS64496\n" +
		"import: from AS64500:AS-CUSTOMERS accept AS64500:AS-CUSTOMERS\n" +
		"import: from AS64501 accept AS64501:AS-CUSTOMERS\n" +
		"import: from AS64502 \n"
	want := []models.RegistryPeer{
		{ASN: 64501, AcceptExpression: "AS64501:AS-CUSTOMERS"},
		{ASN: 64502, AcceptExpression: models.UnknownAccept},
	}
	assert.Equal(t, want, ExtractImports(text, "64496"))
}

func TestExtractImports_IgnoresLinesBeforeMarker(t *testing.T) {
	for _, p := range ExtractImports(selfObject, "64496") {
		assert.NotEqual(t, uint32(65000), p.ASN)
	}
}

func TestExtractImports_StopsAtOtherObject(t *testing.T) {
	text := "aut-num: AS64496\nimport: from AS64500 accept ANY\naut-num: AS64999\nimport: from AS65001 accept ANY\n"
	peers := ExtractImports(text, "64496")
	assert.Len(t, peers, 1)
	assert.Equal(t, uint32(64500), peers[0].ASN)
}

func TestExtractImports_ReopensForSameObject(t *testing.T) {
	text := "aut-num: AS64496\nimport: from AS64500 accept ANY\n\naut-num: AS64496\nimport: from AS64501 accept ANY\n"
	assert.Len(t, ExtractImports(text, "64496"), 2)
}

func TestExtractImports_SelfNotation(t *testing.T) {
	assert.Len(t, ExtractImports(selfObject, "AS64496"), 3)
	assert.Len(t, ExtractImports(selfObject, "as64496"), 3)
}

func TestExtractImports_PrefixASNDoesNotMatch(t *testing.T) {
	text := "aut-num: AS644960\nimport: from AS64500 accept ANY\n"
	assert.Empty(t, ExtractImports(text, "64496"))
}

func TestExtractImports_NoMarker(t *testing.T) {
	assert.Empty(t, ExtractImports("import: from AS64500 accept ANY\n", "64496"))
	assert.Empty(t, ExtractImports("", "64496"))
}

func TestExtractImports_KeepsDuplicates(t *testing.T) {
	text := "aut-num: AS64496\nimport: from AS64500 accept A\nimport: from AS64500 accept B\n"
	peers := ExtractImports(text, "64496")
	assert.Len(t, peers, 2)
	assert.Equal(t, "A", peers[0].AcceptExpression)
}

func TestExtractImports_CRLF(t *testing.T) {
	text := "aut-num: AS64496\r\nimport: from AS64500 accept AS-A\r\n"
	peers := ExtractImports(text, "64496")
	assert.Equal(t, []models.RegistryPeer{{ASN: 64500, AcceptExpression: "AS-A"}}, peers)
}

const peerObject = `% Information related to 'AS64500'

aut-num:        AS64500
as-name:        TRANSIT-A
descr:          Transit Provider A
descr:          Second line
export:         to AS64999 announce AS-OTHER
export:         to AS64496 announce AS-TRANSIT-A;
export:         to AS64496 announce AS-LATER
source:         RIPE
`

func TestParseAsInfo(t *testing.T) {
	info := ParseAsInfo(peerObject, 64500, "64496")
	assert.Equal(t, models.AsInfo{Name: "Transit Provider A", AnnouncedSet: "AS-TRANSIT-A"}, info)
}

func TestParseAsInfo_NoExportToSelf(t *testing.T) {
	info := ParseAsInfo(peerObject, 64500, "64497")
	assert.Equal(t, "Transit Provider A", info.Name)
	assert.Equal(t, models.AnySet, info.AnnouncedSet)
}

func TestParseAsInfo_AsNameFallback(t *testing.T) {
	text := "aut-num: AS64500\nas-name: TRANSIT-A\nexport: to AS64496 announce AS-A\n"
	assert.Equal(t, models.AsInfo{Name: "TRANSIT-A", AnnouncedSet: "AS-A"}, ParseAsInfo(text, 64500, "64496"))
}

func TestParseAsInfo_OtherObjectIgnored(t *testing.T) {
	text := "aut-num: AS64501\ndescr: Wrong\nexport: to AS64496 announce AS-WRONG\n"
	assert.Equal(t, models.AsInfo{AnnouncedSet: models.AnySet}, ParseAsInfo(text, 64500, "64496"))
}

func TestParseAsInfo_Empty(t *testing.T) {
	assert.Equal(t, models.AsInfo{AnnouncedSet: models.AnySet}, ParseAsInfo("", 64500, "64496"))
}
