package cli

import (
	"context"
	"errors"

	"github.com/chloroExtractorTeam/fastq-shuffle/internal/fs"
	"github.com/chloroExtractorTeam/fastq-shuffle/internal/logging"
	"github.com/chloroExtractorTeam/fastq-shuffle/internal/shuffle"
	"github.com/chloroExtractorTeam/fastq-shuffle/internal/sizeparse"
)

var errMissingInputs = errors.New("required parameter are --reads and --mates")

var errUnequalInputCounts = errors.New("ERROR Number of first and second read files are different")

// Exec runs the tool's single command: parse, validate, and drive the
// shuffle. Returns the process exit code.
func Exec(ctx context.Context, o *IO, args []string) int {
	pf, err := parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(o)

		return 1
	}

	if pf.showHelp {
		printUsage(o)

		return 0
	}

	if pf.showVersion {
		o.Printf("v%s\n", Version)

		return 0
	}

	if err := validate(pf); err != nil {
		o.ErrPrintln(err)
		printUsage(o)

		return 1
	}

	if pf.tempFilesWarn != "" {
		o.Warn(pf.tempFilesWarn)
	}

	blockSize, err := sizeparse.Parse(pf.blockSizeRaw)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(o)

		return 1
	}

	log := logging.New(pf.verbosity, pf.debug)

	pairs := make([]shuffle.Pair, len(pf.reads))
	for i := range pf.reads {
		pairs[i] = shuffle.Pair{Read: pf.reads[i], Mate: pf.mates[i]}
	}

	cfg := shuffle.Config{
		Pairs:          pairs,
		BlockSizeBytes: blockSize,
		NumTempFiles:   pf.numTempFiles,
		TempDir:        pf.tempDir,
		OutDir:         pf.outDir,
		Seed:           pf.seed,
		FS:             fs.NewReal(),
		Logger:         log,
	}

	if err := shuffle.Run(ctx, cfg); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	o.Finish()

	return 0
}

func validate(pf *parsedFlags) error {
	if len(pf.reads) == 0 && len(pf.mates) == 0 {
		return errMissingInputs
	}

	if len(pf.reads) != len(pf.mates) {
		return errUnequalInputCounts
	}

	return nil
}

func printUsage(o *IO) {
	o.Println("fastq-shuffle - paired-end FASTQ external-memory shuffler")
	o.Println()
	o.Println("Usage: fastq-shuffle -1 <reads> -2 <mates> [flags]")
	o.Println()
	o.Println("Flags:")
	o.Println("  -1, --reads <path[,path...]>       first-read FASTQ file(s), may repeat")
	o.Println("  -2, --mates <path[,path...]>        second-read FASTQ file(s), may repeat")
	o.Println("  -t, --num-temp-files <int|auto>     target bucket count, in-memory included (default auto)")
	o.Println("  -s, --shuffle-block-size <size>     target per-bucket size (default 1G)")
	o.Println("  -d, --temp-directory <dir>          parent directory for spill files")
	o.Println("  -o, --outdir <dir>                  parent directory for output files")
	o.Println("  -r, --seed, --randomseed <string>   RNG seed (default: wall-clock seconds)")
	o.Println("  -v                                   lower logging threshold (repeatable)")
	o.Println("  -D, --debug                         enable debug logging")
	o.Println("  -V, --version                       print the version and exit")
	o.Println("  -h, --help                           show this help and exit")
}
