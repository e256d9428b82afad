package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseASN parses an autonomous system number written as "64500" or "AS64500".
// The "AS" prefix is case-insensitive. Zero is rejected.
func ParseASN(s string) (uint32, error) {
	digits := TrimASPrefix(strings.TrimSpace(s))
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid AS number %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid AS number %q: must be positive", s)
	}
	return uint32(n), nil
}

// FormatASN renders n in registry notation, e.g. "AS64500".
func FormatASN(n uint32) string {
	return "AS" + strconv.FormatUint(uint64(n), 10)
}

// TrimASPrefix strips a leading "AS" (any case) from s.
func TrimASPrefix(s string) string {
	if len(s) >= 2 && strings.EqualFold(s[:2], "AS") {
		return s[2:]
	}
	return s
}
