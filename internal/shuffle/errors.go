package shuffle

import "errors"

// ErrTruncatedRecord is returned by [PairReader.ReadPair] when the two
// inputs disagree about where the record stream ends: one side hits EOF
// mid-quartet, or the two sides have unequal record counts. Per the
// redesign notes (§9), this is surfaced as a fatal error rather than
// silently truncating to the shorter file.
var ErrTruncatedRecord = errors.New("truncated record or unequal record counts between paired inputs")

// ErrOutputExists is returned when an output path already exists; the
// driver refuses to overwrite it (§6, §7).
var ErrOutputExists = errors.New("output file already exists")
