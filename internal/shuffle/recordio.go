package shuffle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// PairReader reads four-line record pairs in lockstep from two inputs
// (component C2). A record is the concatenation of four newline-terminated
// lines; the pair's A half comes from the first input, the B half from
// the second.
type PairReader struct {
	a, b *bufio.Reader
}

// NewPairReader wraps ra (first-read input) and rb (second-read input).
func NewPairReader(ra, rb io.Reader) *PairReader {
	return &PairReader{a: bufio.NewReader(ra), b: bufio.NewReader(rb)}
}

// ReadPair returns the next record pair. It returns io.EOF once both
// inputs are cleanly exhausted at a record boundary. Any other
// disagreement between the two streams — one EOFs mid-quartet, or the
// streams have unequal record counts — is reported as
// [ErrTruncatedRecord].
func (p *PairReader) ReadPair() (a, b []byte, err error) {
	aData, aLines, aErr := readQuartet(p.a)
	bData, bLines, bErr := readQuartet(p.b)

	if aErr != nil && !errors.Is(aErr, io.EOF) {
		return nil, nil, fmt.Errorf("reading first-read input: %w", aErr)
	}

	if bErr != nil && !errors.Is(bErr, io.EOF) {
		return nil, nil, fmt.Errorf("reading second-read input: %w", bErr)
	}

	switch {
	case aLines == 0 && bLines == 0 && errors.Is(aErr, io.EOF) && errors.Is(bErr, io.EOF):
		return nil, nil, io.EOF
	case aLines == 4 && bLines == 4:
		return aData, bData, nil
	default:
		return nil, nil, fmt.Errorf("%w (first-read has %d complete line(s), second-read has %d)", ErrTruncatedRecord, aLines, bLines)
	}
}

// readQuartet reads up to four newline-terminated lines from r, returning
// their concatenation and how many were complete. lines < 4 together with
// a non-nil err means the input ended mid-record; err is io.EOF at the end
// of input, or whatever other read error r reported.
func readQuartet(r *bufio.Reader) (data []byte, lines int, err error) {
	for lines < 4 {
		line, rerr := r.ReadBytes('\n')
		data = append(data, line...)

		if len(line) > 0 && line[len(line)-1] == '\n' {
			lines++
		}

		if rerr != nil {
			return data, lines, rerr
		}
	}

	return data, lines, nil
}

// PairWriter appends record halves to two output streams in pair order
// (component C2).
type PairWriter struct {
	a, b io.Writer
}

// NewPairWriter wraps wa (first-read output) and wb (second-read
// output).
func NewPairWriter(wa, wb io.Writer) *PairWriter {
	return &PairWriter{a: wa, b: wb}
}

// WritePair appends a to the first output and b to the second, with no
// separator beyond the newline terminators already present in the bytes.
func (p *PairWriter) WritePair(a, b []byte) error {
	if _, err := p.a.Write(a); err != nil {
		return fmt.Errorf("writing first-read output: %w", err)
	}

	if _, err := p.b.Write(b); err != nil {
		return fmt.Errorf("writing second-read output: %w", err)
	}

	return nil
}
