package router

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"peerdiff/feature/peering/models"
)

var (
	remoteASRe    = regexp.MustCompile(`^\s*neighbor\s+(\S+)\s+remote-as\s+(\d+)\s*$`)
	peerGroupRe   = regexp.MustCompile(`^\s*neighbor\s+(\S+)\s+peer-group\s+(\S+)\s*$`)
	descriptionRe = regexp.MustCompile(`^\s*neighbor\s+(\S+)\s+description\s+(.+?)\s*$`)
)

// Extract returns one RouterPeer per `neighbor <address> remote-as <asn>` line, in
// file order. Duplicate ASNs are kept; the store drops them on insert.
//
// Peer-group and description statements are associated by address regardless of
// where they appear in the text. Statements naming a peer-group instead of an IP
// address are skipped.
func Extract(text string) []models.RouterPeer {
	lines := strings.Split(text, "\n")
	groups, descriptions := index(lines)

	var peers []models.RouterPeer
	for _, line := range lines {
		m := remoteASRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		addr, ok := normalizeAddr(m[1])
		if !ok {
			continue
		}
		asn, err := strconv.ParseUint(m[2], 10, 32)
		if err != nil || asn == 0 {
			continue
		}
		peers = append(peers, models.RouterPeer{
			ASN:             uint32(asn),
			NeighborAddress: addr,
			PeerGroup:       groups[addr],
			Description:     descriptions[addr],
		})
	}
	return peers
}

// index collects peer-group and description statements by neighbor address.
// The last statement for an address wins.
func index(lines []string) (groups, descriptions map[string]string) {
	groups = make(map[string]string)
	descriptions = make(map[string]string)

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if m := peerGroupRe.FindStringSubmatch(line); m != nil {
			if addr, ok := normalizeAddr(m[1]); ok {
				groups[addr] = m[2]
			}
			continue
		}
		if m := descriptionRe.FindStringSubmatch(line); m != nil {
			if addr, ok := normalizeAddr(m[1]); ok {
				descriptions[addr] = m[2]
			}
		}
	}
	return groups, descriptions
}

// normalizeAddr parses s as an IP literal and returns its canonical form, so that
// "2001:DB8::1" and "2001:db8::1" refer to the same neighbor.
func normalizeAddr(s string) (string, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return "", false
	}
	return addr.String(), true
}
