// docnotes applies curated usage notes to a docset file:
// it appends examples and reference links
// to the documentation text of the identifiers the docset declares,
// and can render the result as a standalone HTML page.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse reports its own errors.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("docnotes: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		if cerr := closeDebug(); cerr != nil {
			cmd.log.Printf("docnotes: closing debug log: %v", cerr)
		}
	}()

	app := applier{
		Log:      cmd.log,
		DebugLog: log.New(debugw, "", 0),
	}
	return errtrace.Wrap(app.Apply(opts))
}
