package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"go.abhg.dev/docnotes"
	"go.abhg.dev/docnotes/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for docnotes.
type params struct {
	version bool
	help    Help

	Docset    string
	NoBuiltin bool
	DryRun    bool
	Notes     []noteSpec

	HTML  string
	Title string

	Debug flagvalue.FileSwitch
}

// cliParser parses the command line arguments for docnotes.
// Flags not given on the command line
// fall back to DOCNOTES_* environment variables.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (p *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("docnotes", flag.ContinueOnError)
	fset.SetOutput(p.Stderr)
	fset.Usage = func() {
		DefaultHelp.Write(p.Stderr)
	}

	var opts params

	// Docset:
	fset.StringVar(&opts.Docset, "docset", "", "")
	fset.BoolVar(&opts.NoBuiltin, "no-builtin", false, "")
	fset.Var(flagvalue.ListOf(&opts.Notes), "note", "")
	fset.BoolVar(&opts.DryRun, "dry-run", false, "")

	// HTML output:
	fset.StringVar(&opts.HTML, "html", "", "")
	fset.StringVar(&opts.Title, "title", "Documentation notes", "")

	// Program-level:
	fset.Var(&opts.Debug, "debug", "")
	fset.BoolVar(&opts.version, "version", false, "")
	fset.Var(&opts.help, "help", "")
	fset.Var(&opts.help, "h", "")

	return &opts, fset
}

func (p *cliParser) Parse(args []string) (*params, error) {
	opts, fset := p.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("DOCNOTES")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if opts.version {
		fmt.Fprintln(p.Stdout, "docnotes", _version)
		return nil, errHelp
	}

	if opts.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			opts.help = h
			args = args[1:]
		}
	}

	switch opts.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := opts.help.Write(p.Stderr); err != nil {
			fmt.Fprintln(p.Stderr, err)
		}
		return nil, errHelp
	}

	if len(args) > 0 {
		fmt.Fprintf(p.Stderr, "unexpected arguments: %q\n", args)
		UsageHelp.Write(p.Stderr)
		return nil, errInvalidArguments
	}

	if opts.Docset == "" {
		fmt.Fprintln(p.Stderr, "Please provide a docset file with -docset.")
		UsageHelp.Write(p.Stderr)
		return nil, errInvalidArguments
	}

	return opts, nil
}

// noteSpec is the value of a single -note flag,
// in the form 'name[:kind]=text'.
// The kind defaults to callable.
type noteSpec docnotes.Note

var _ flag.Getter = (*noteSpec)(nil)

func (n *noteSpec) Get() any { return docnotes.Note(*n) }

func (n *noteSpec) String() string {
	if n.Kind == docnotes.Callable {
		return fmt.Sprintf("%s=%s", n.Name, n.Text)
	}
	return fmt.Sprintf("%s:%v=%s", n.Name, n.Kind, n.Text)
}

func (n *noteSpec) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return fmt.Errorf("expected form 'name[:kind]=text'")
	}

	name, text := s[:idx], s[idx+1:]
	if ci := strings.IndexRune(name, ':'); ci >= 0 {
		kind, err := docnotes.ParseKind(name[ci+1:])
		if err != nil {
			return err
		}
		n.Kind = kind
		name = name[:ci]
	}
	if name == "" {
		return fmt.Errorf("expected an identifier before '='")
	}

	n.Name = name
	n.Text = text
	return nil
}
