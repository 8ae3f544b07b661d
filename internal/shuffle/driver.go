package shuffle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/chloroExtractorTeam/fastq-shuffle/internal/fs"
	"github.com/chloroExtractorTeam/fastq-shuffle/internal/rng"
)

// Logger is the minimal logging contract the driver needs. It is
// satisfied directly by *zap.SugaredLogger (and so by
// internal/logging.Logger), but kept as an interface here so the core
// stays decoupled from any particular logging library.
type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Debugf(string, ...any) {}

// Pair is one ordered (first-read, second-read) input file pair.
type Pair struct {
	Read string
	Mate string
}

// Config carries everything the external collaborator (the CLI layer)
// supplies to the shuffle driver (§4.6).
type Config struct {
	Pairs []Pair

	// BlockSizeBytes is the caller's target per-bucket byte footprint.
	BlockSizeBytes uint64

	// NumTempFiles overrides BlockSizeBytes when non-nil and > 0, per
	// block_size = ceil(max_pair_bytes / num_temp_files).
	NumTempFiles *int

	// TempDir is the parent directory for spill files. Empty means
	// os.TempDir().
	TempDir string

	// OutDir is the parent directory for outputs. Empty means each
	// output is written alongside its input.
	OutDir string

	// Seed is the top-level RNG seed. Empty means the current
	// wall-clock seconds.
	Seed string

	FS     fs.FS
	Logger Logger
}

// Run processes every configured pair independently and returns the
// first error encountered. Regardless of outcome, the temp directory
// created for spill files is removed before Run returns (invariant 5).
// ctx is checked between pairs so a caller driving graceful shutdown
// (SIGINT/SIGTERM) can stop the run before starting the next one.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Pairs) == 0 {
		return errors.New("shuffle: no input pairs configured")
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = fs.NewReal()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	maxPairBytes, err := maxPairSize(fsys, cfg.Pairs)
	if err != nil {
		return err
	}

	blockSize, k := resolveBlockSizeAndBuckets(maxPairBytes, cfg.BlockSizeBytes, cfg.NumTempFiles)
	logger.Infof("resolved shuffle-block-size %s, %d spill bucket(s), for max combined pair size %s",
		humanize.IBytes(blockSize), k, humanize.IBytes(maxPairBytes))

	tempBase := cfg.TempDir
	if tempBase == "" {
		tempBase = os.TempDir()
	}

	runDir := filepath.Join(tempBase, "fastq-shuffle-"+uuid.NewString())
	if err := fsys.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}

	defer func() { _ = fsys.RemoveAll(runDir) }()

	for i, pair := range cfg.Pairs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := runPair(fsys, logger, runDir, i, pair, k, cfg.Seed, cfg.OutDir); err != nil {
			return fmt.Errorf("pair %d (%s / %s): %w", i, pair.Read, pair.Mate, err)
		}
	}

	return nil
}

// maxPairSize computes S, the maximum of size(reads[i])+size(mates[i])
// over all pairs (§4.6).
func maxPairSize(fsys fs.FS, pairs []Pair) (uint64, error) {
	var max uint64

	for _, p := range pairs {
		readInfo, err := fsys.Stat(p.Read)
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", p.Read, err)
		}

		mateInfo, err := fsys.Stat(p.Mate)
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", p.Mate, err)
		}

		total := uint64(readInfo.Size()) + uint64(mateInfo.Size())
		if total > max {
			max = total
		}
	}

	return max, nil
}

// resolveBlockSizeAndBuckets implements the "Bucket count selection"
// rule of §4.6: block_size is overridden by numTempFiles when set, and K
// is the number of spill buckets needed so the expected per-bucket load
// fits inside block_size.
func resolveBlockSizeAndBuckets(s, requestedBlockSize uint64, numTempFiles *int) (blockSize uint64, k int) {
	blockSize = requestedBlockSize

	if numTempFiles != nil && *numTempFiles > 0 {
		blockSize = ceilDiv(s, uint64(*numTempFiles))
	}

	if blockSize == 0 {
		blockSize = 1
	}

	if blockSize >= s {
		return blockSize, 0
	}

	return blockSize, int(ceilDiv(s, blockSize)) - 1
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return a
	}

	return (a + b - 1) / b
}

// OutputPath derives the output path for input per §6: join(outDir or
// dirname(input), basename(input)+".shuffled").
func OutputPath(input, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	return filepath.Join(dir, filepath.Base(input)+".shuffled")
}

// runPair executes the distribution pass and per-bucket permute+append
// for one input pair (§4.6, "Per-pair execution").
func runPair(fsys fs.FS, logger Logger, runDir string, pairIdx int, pair Pair, k int, seed, outDir string) error {
	src, effectiveSeed := rng.Seed(seed)
	logger.Infof("pair %d: seeded with %q", pairIdx, effectiveSeed)

	pairDir := filepath.Join(runDir, fmt.Sprintf("pair-%d", pairIdx))
	if err := fsys.MkdirAll(pairDir, 0o755); err != nil {
		return fmt.Errorf("creating pair temp directory: %w", err)
	}

	store, err := NewStore(fsys, pairDir, k)
	if err != nil {
		return err
	}

	readOutPath := OutputPath(pair.Read, outDir)
	mateOutPath := OutputPath(pair.Mate, outDir)

	for _, p := range []string{readOutPath, mateOutPath} {
		exists, err := fsys.Exists(p)
		if err != nil {
			return fmt.Errorf("checking output path %s: %w", p, err)
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrOutputExists, p)
		}
	}

	inA, err := fsys.Open(pair.Read)
	if err != nil {
		return fmt.Errorf("opening first-read input: %w", err)
	}
	defer inA.Close()

	inB, err := fsys.Open(pair.Mate)
	if err != nil {
		return fmt.Errorf("opening second-read input: %w", err)
	}
	defer inB.Close()

	outA, err := fsys.OpenFile(readOutPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating first-read output: %w", err)
	}
	defer outA.Close()

	outB, err := fsys.OpenFile(mateOutPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating second-read output: %w", err)
	}
	defer outB.Close()

	bufA := bufio.NewWriter(outA)
	bufB := bufio.NewWriter(outB)

	reader := NewPairReader(inA, inB)
	writer := NewPairWriter(bufA, bufB)

	m := 0

	for {
		a, b, err := reader.ReadPair()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return err
		}

		bucket := ChooseBucket(k, src)
		if err := store.Append(bucket, a, b); err != nil {
			return err
		}

		m++
	}

	logger.Debugf("pair %d: distributed %d record pair(s) across %d bucket(s)", pairIdx, m, k+1)

	if err := store.CloseSpillsForWriting(); err != nil {
		return err
	}

	src.Reseed(rng.Salt(effectiveSeed, -1))

	buf, idx := store.MemBucket()
	Permute(idx, src)

	if err := WritePermuted(buf, idx, writer); err != nil {
		return err
	}

	for b := 1; b <= k; b++ {
		buf, idx, err := store.LoadSpill(b)
		if err != nil {
			return err
		}

		src.Reseed(rng.Salt(effectiveSeed, b-1))
		Permute(idx, src)

		if err := WritePermuted(buf, idx, writer); err != nil {
			return err
		}
	}

	if err := bufA.Flush(); err != nil {
		return fmt.Errorf("flushing first-read output: %w", err)
	}

	if err := bufB.Flush(); err != nil {
		return fmt.Errorf("flushing second-read output: %w", err)
	}

	return nil
}
