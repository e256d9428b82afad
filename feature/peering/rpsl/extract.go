package rpsl

import (
	"regexp"
	"strconv"
	"strings"

	"peerdiff/core/utils"
	"peerdiff/feature/peering/models"
)

var (
	autNumRe = regexp.MustCompile(`(?i)^aut-num:\s*AS(\w+)`)
	importRe = regexp.MustCompile(`(?i)^import:\s+from\s+AS(\d+)(?:(?:\s.*?)?\s+accept\s+(.+)|\s.*|$)`)
	descrRe  = regexp.MustCompile(`(?i)^descr:\s*(.*?)\s*$`)
	asNameRe = regexp.MustCompile(`(?i)^as-name:\s*(.*?)\s*$`)
)

// blockScanner walks the lines of one aut-num object. The object starts at
// `aut-num: AS<asn>` and ends at the first blank line or at an aut-num line for
// any other AS. A later aut-num line for the same AS opens a new block.
type blockScanner struct {
	asn     string
	inBlock bool
}

// next reports whether line belongs to the tracked aut-num object.
func (s *blockScanner) next(line string) bool {
	if m := autNumRe.FindStringSubmatch(line); m != nil {
		s.inBlock = strings.EqualFold(m[1], s.asn)
		return s.inBlock
	}
	if strings.TrimSpace(line) == "" {
		s.inBlock = false
	}
	return s.inBlock
}

// ExtractImports returns one RegistryPeer per import line in the operator's own
// aut-num object. Lines before the object are ignored. Import lines without an
// accept clause get models.UnknownAccept. Duplicate ASNs are kept.
func ExtractImports(text, selfAsno string) []models.RegistryPeer {
	scanner := &blockScanner{asn: utils.TrimASPrefix(selfAsno)}

	var peers []models.RegistryPeer
	for _, line := range splitLines(text) {
		if !scanner.next(line) {
			continue
		}
		m := importRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		asn, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil || asn == 0 {
			continue
		}
		accept := stripComment(m[2])
		if accept == "" {
			accept = models.UnknownAccept
		}
		peers = append(peers, models.RegistryPeer{ASN: uint32(asn), AcceptExpression: accept})
	}
	return peers
}

// ParseAsInfo reads the name and the set announced to selfAsno from the aut-num
// object of asn. Missing fields default to "" and models.AnySet.
func ParseAsInfo(text string, asn uint32, selfAsno string) models.AsInfo {
	info := models.AsInfo{AnnouncedSet: models.AnySet}
	exportRe := regexp.MustCompile(`(?i)^export:.*\bAS` + regexp.QuoteMeta(utils.TrimASPrefix(selfAsno)) + `\b.*?\bannounce\s+(\S+)`)

	scanner := &blockScanner{asn: strconv.FormatUint(uint64(asn), 10)}
	var haveDescr, haveExport bool
	for _, line := range splitLines(text) {
		if !scanner.next(line) {
			continue
		}
		if !haveDescr {
			if m := descrRe.FindStringSubmatch(line); m != nil && m[1] != "" {
				info.Name = m[1]
				haveDescr = true
			} else if m := asNameRe.FindStringSubmatch(line); m != nil && info.Name == "" {
				info.Name = m[1]
			}
		}
		if !haveExport {
			if m := exportRe.FindStringSubmatch(line); m != nil {
				info.AnnouncedSet = strings.TrimRight(m[1], ";")
				haveExport = true
			}
		}
		if haveDescr && haveExport {
			break
		}
	}
	return info
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// stripComment removes a trailing RPSL comment and surrounding blanks.
func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
