package shuffle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chloroExtractorTeam/fastq-shuffle/internal/fs"
)

// memBucket is bucket 0: a growable byte buffer plus its index vector,
// entirely resident in memory (§4.3).
type memBucket struct {
	buf []byte
	idx []IndexEntry
}

func (m *memBucket) append(a, b []byte) {
	offset := uint64(len(m.buf))
	m.buf = append(m.buf, a...)
	m.buf = append(m.buf, b...)
	m.idx = append(m.idx, IndexEntry{Offset: offset, LenA: uint32(len(a)), LenB: uint32(len(b))})
}

// spillBucket is one of the K on-disk buckets: a data file holding the
// concatenation of A‖B per record, and an index file holding the packed
// triples, both in arrival order (§4.3).
type spillBucket struct {
	dataPath, indexPath string
	dataFile, indexFile fs.File
	written             uint64 // running data-file offset, avoids a stat per append
}

func createSpillBucket(fsys fs.FS, dir string, id int) (*spillBucket, error) {
	dataPath := filepath.Join(dir, fmt.Sprintf("bucket-%d.data", id))
	indexPath := filepath.Join(dir, fmt.Sprintf("bucket-%d.idx", id))

	dataFile, err := fsys.OpenFile(dataPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating spill data file: %w", err)
	}

	indexFile, err := fsys.OpenFile(indexPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		dataFile.Close()

		return nil, fmt.Errorf("creating spill index file: %w", err)
	}

	return &spillBucket{dataPath: dataPath, indexPath: indexPath, dataFile: dataFile, indexFile: indexFile}, nil
}

// append records the current offset, writes A‖B to the data file, and
// writes the packed triple to the index file.
func (s *spillBucket) append(a, b []byte) error {
	entry := IndexEntry{Offset: s.written, LenA: uint32(len(a)), LenB: uint32(len(b))}

	if _, err := s.dataFile.Write(a); err != nil {
		return fmt.Errorf("writing spill data: %w", err)
	}

	if _, err := s.dataFile.Write(b); err != nil {
		return fmt.Errorf("writing spill data: %w", err)
	}

	s.written += uint64(len(a)) + uint64(len(b))

	packed := entry.AppendTo(nil)
	if _, err := s.indexFile.Write(packed); err != nil {
		return fmt.Errorf("writing spill index: %w", err)
	}

	return nil
}

// closeForWriting closes both handles after the distribution pass, before
// the bucket is loaded back for permutation.
func (s *spillBucket) closeForWriting() error {
	if err := s.dataFile.Close(); err != nil {
		return fmt.Errorf("closing spill data file: %w", err)
	}

	if err := s.indexFile.Close(); err != nil {
		return fmt.Errorf("closing spill index file: %w", err)
	}

	return nil
}

// load reads the entire data file and decodes the entire index file. It
// does not check invariant 3 (data/index sizes agree with the recorded
// lengths); append keeps the two files in step.
func (s *spillBucket) load(fsys fs.FS) (buf []byte, idx []IndexEntry, err error) {
	buf, err = fsys.ReadFile(s.dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading spill data file: %w", err)
	}

	packed, err := fsys.ReadFile(s.indexPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading spill index file: %w", err)
	}

	return buf, DecodeIndex(packed), nil
}

// Store owns the K+1 buckets for one input pair's distribution pass:
// bucket 0 is in-memory, buckets 1..K are spill files under dir.
type Store struct {
	fsys   fs.FS
	mem    memBucket
	spills []*spillBucket
}

// NewStore creates a fresh Store with k spill buckets rooted at dir. dir
// must already exist. Spill file names are unique within dir but are not
// required to be unique across calls with different dirs, since each
// input pair gets its own pair subdirectory (see [Run]).
func NewStore(fsys fs.FS, dir string, k int) (*Store, error) {
	s := &Store{fsys: fsys, spills: make([]*spillBucket, k)}

	for i := 0; i < k; i++ {
		// Spill buckets are numbered 1..K in the data model.
		sb, err := createSpillBucket(fsys, dir, i+1)
		if err != nil {
			return nil, err
		}

		s.spills[i] = sb
	}

	return s, nil
}

// Append routes one record pair to bucket id (0 = in-memory, 1..K =
// spill), per the distribution pass (§4.5).
func (s *Store) Append(id int, a, b []byte) error {
	if id == 0 {
		s.mem.append(a, b)

		return nil
	}

	return s.spills[id-1].append(a, b)
}

// CloseSpillsForWriting closes all spill file handles after the
// distribution pass completes.
func (s *Store) CloseSpillsForWriting() error {
	for _, sb := range s.spills {
		if err := sb.closeForWriting(); err != nil {
			return err
		}
	}

	return nil
}

// MemBucket returns the in-memory bucket's buffer and index, already
// resident (§4.6 step 5, bucket b = -1).
func (s *Store) MemBucket() ([]byte, []IndexEntry) {
	return s.mem.buf, s.mem.idx
}

// NumSpills reports K, the number of spill buckets (0 for a pure
// in-memory run).
func (s *Store) NumSpills() int {
	return len(s.spills)
}

// LoadSpill loads spill bucket i (1-indexed, 1..K) into memory, returning
// its buffer and decoded index. The spill's files are no longer needed
// for this pair afterward.
func (s *Store) LoadSpill(i int) ([]byte, []IndexEntry, error) {
	return s.spills[i-1].load(s.fsys)
}
