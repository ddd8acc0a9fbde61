// Package main provides the gtlgen CLI that expands a
// *.go.tpl template with literal substitutions and writes
// the generated source.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "gtlgen",
	})
}

// run executes the command for argv and returns the
// process exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd := newRootCmd(argv)
	cmd.SetArgs(argv[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		logger.Error("invalid usage", "err", ue.err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())

		return exitUsage
	}

	logger.Error("generation failed", "err", err)

	return exitFailure
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
