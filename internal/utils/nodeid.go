package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNodeID is returned by ParseNodeID for malformed input.
var ErrInvalidNodeID = errors.New("invalid node id")

// ParseNodeID parses a 64-bit node id given either in decimal or as a
// 0x-prefixed hexadecimal number.
func ParseNodeID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNodeID
	}

	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = rest, 16
	}

	nodeID, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNodeID, err)
	}
	return nodeID, nil
}
