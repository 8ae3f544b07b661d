// Package sizeparse parses human-entered byte size strings such as "1G",
// "50M", or "1.5GiB" into a byte count.
//
// It is a pure function extracted out of the CLI flag layer per the
// re-architecture notes: callers get a byte count or an error, never a
// partially-parsed value.
package sizeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// grammar matches `^\s*([0-9]+(\.[0-9]+)?)\s*([KMGP]?)(i?)B?\s*$`,
// case-insensitive, per the CLI surface's size grammar.
var grammar = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*([KMGP]?)(i?)B?\s*$`)

var unitMultiplier = map[string]uint64{
	"":  1,
	"k": 1024,
	"m": 1024 * 1024,
	"g": 1024 * 1024 * 1024,
	"p": 1024 * 1024 * 1024 * 1024 * 1024,
}

// Parse converts a size string into a byte count. The unit suffix is
// optional and case-insensitive; a trailing "i" or "B" (e.g. "GiB", "GB",
// "G") is accepted but does not change the base, which is always 1024.
func Parse(s string) (uint64, error) {
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid size %q: expected a number optionally followed by K, M, G, or P", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	mult, ok := unitMultiplier[strings.ToLower(m[2])]
	if !ok {
		return 0, fmt.Errorf("invalid size %q: unknown unit %q", s, m[2])
	}

	return uint64(value * float64(mult)), nil
}
