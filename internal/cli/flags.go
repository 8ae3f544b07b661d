package cli

import (
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// parsedFlags holds the validated result of parsing the command line,
// ready to feed a [shuffle.Config].
type parsedFlags struct {
	reads, mates []string
	numTempFiles *int
	blockSizeRaw string
	tempDir      string
	outDir       string
	seed         string
	verbosity    int
	debug        bool
	showVersion  bool
	showHelp     bool

	// tempFilesWarn is non-empty when --num-temp-files fell back to auto
	// leniently (§9) and the caller should surface a warning.
	tempFilesWarn string
}

// parse registers every flag from §6 on a fresh FlagSet, parses args, and
// returns the validated result. args excludes the program name.
func parse(args []string) (*parsedFlags, error) {
	fs := flag.NewFlagSet("fastq-shuffle", flag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.Usage = func() {}
	fs.SetOutput(&strings.Builder{})

	reads := fs.StringArrayP("reads", "1", nil, "first-read FASTQ file(s), comma-separated, may repeat")
	mates := fs.StringArrayP("mates", "2", nil, "second-read FASTQ file(s), comma-separated, may repeat")
	numTempFiles := fs.StringP("num-temp-files", "t", "auto", "target bucket count (in-memory bucket included), or auto")
	blockSize := fs.StringP("shuffle-block-size", "s", "1G", "target per-bucket size (e.g. 1G, 50M, 512KiB)")
	tempDir := fs.StringP("temp-directory", "d", "", "parent directory for spill files")
	outDir := fs.StringP("outdir", "o", "", "parent directory for output files")
	seed := fs.StringP("seed", "r", "", "RNG seed (default: current wall-clock seconds)")

	var randomseed string
	fs.StringVarP(&randomseed, "randomseed", "", "", "alias for --seed")

	verbosity := fs.CountP("verbose", "v", "lower the logging threshold by one level; may repeat")
	debug := fs.BoolP("debug", "D", false, "enable debug logging")
	version := fs.BoolP("version", "V", false, "print the version and exit")
	help := fs.BoolP("help", "h", false, "show usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pf := &parsedFlags{
		reads:        splitPaths(*reads),
		mates:        splitPaths(*mates),
		blockSizeRaw: *blockSize,
		tempDir:      *tempDir,
		outDir:       *outDir,
		seed:         *seed,
		verbosity:    *verbosity,
		debug:        *debug,
		showVersion:  *version,
		showHelp:     *help,
	}

	if pf.seed == "" {
		pf.seed = randomseed
	}

	pf.numTempFiles, pf.tempFilesWarn = parseNumTempFiles(*numTempFiles)

	return pf, nil
}

// splitPaths flattens repeated, comma-separated path flag occurrences
// into one ordered list, per "-1/--reads <path[,path...]>, may repeat;
// comma-split and concatenated."
func splitPaths(occurrences []string) []string {
	var out []string

	for _, occ := range occurrences {
		for _, p := range strings.Split(occ, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
	}

	return out
}

// parseNumTempFiles implements the lenient fallback of §9: a non-positive
// integer or a non-numeric, non-"auto" value falls back to auto with a
// warning rather than a fatal error.
func parseNumTempFiles(raw string) (n *int, warning string) {
	if raw == "" || strings.EqualFold(raw, "auto") {
		return nil, ""
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return nil, fmt.Sprintf("invalid --num-temp-files %q, falling back to auto", raw)
	}

	return &v, ""
}
