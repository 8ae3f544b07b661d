// Package logging wraps the process-wide structured logger used for
// progress and diagnostic output. It exists so the core shuffle package
// depends only on a minimal interface ([shuffle.Logger]) while the CLI
// layer controls verbosity the way an operator expects: `-v` lowers the
// threshold one step per occurrence, `-D/--debug` jumps straight to
// debug.
package logging

import (
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

// Logger is go-log's sugared logger, satisfying [shuffle.Logger] directly
// via its Infof/Debugf methods.
type Logger = *zap.SugaredLogger

// subsystem is the single named logger for the whole tool; go-log
// indexes loggers by subsystem name and this is the only one we need.
const subsystem = "fastq-shuffle"

// New returns the process logger, with its level set per verbosity.
// verbosity counts `-v` occurrences; debug forces the lowest threshold
// regardless of verbosity.
func New(verbosity int, debug bool) Logger {
	logging.SetAllLoggers(levelFor(verbosity, debug))

	return &logging.Logger(subsystem).SugaredLogger
}

// levelFor maps CLI verbosity onto go-log's level scale. The default
// (verbosity 0, no --debug) is Info, so progress lines reach stderr.
// One -v steps down to Debug, the lowest level; --debug goes straight
// to Debug.
func levelFor(verbosity int, debug bool) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}

	switch {
	case verbosity <= 0:
		return logging.LevelInfo
	default:
		return logging.LevelDebug
	}
}
