package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger selected by --log-level and --log-file.
// Interactive commands own the terminal, so with quiet set and no log file
// they get a silent logger. The returned closer releases the log file.
func newLogger(prefix string, quiet bool) (*log.Logger, func()) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w = f
		closeFn = func() { f.Close() } //nolint:errcheck
	} else if quiet {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closeFn
}
