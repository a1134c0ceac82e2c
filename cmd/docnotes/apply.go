package main

import (
	"fmt"
	"log"
	"os"

	"braces.dev/errtrace"

	"go.abhg.dev/docnotes"
	"go.abhg.dev/docnotes/internal/docfile"
	"go.abhg.dev/docnotes/internal/errdefer"
	"go.abhg.dev/docnotes/internal/highlight"
	"go.abhg.dev/docnotes/internal/htmlout"
)

// applier loads a docset, applies notes to it,
// and writes the results out.
//
// In terms of code organization,
// applier's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type applier struct {
	Log      *log.Logger
	DebugLog *log.Logger
}

// Apply runs the applier with the given parameters.
func (app *applier) Apply(opts *params) error {
	f, err := docfile.Load(opts.Docset)
	if err != nil {
		return errtrace.Wrap(err)
	}

	notes := app.collectNotes(f, opts)

	ann := docnotes.Annotator{Registry: f}
	if err := ann.Apply(notes); err != nil {
		return errtrace.Wrap(err)
	}
	app.Log.Printf("Applied %d notes to %v", len(notes), opts.Docset)

	if opts.DryRun {
		app.Log.Printf("Dry run: not writing %v", opts.Docset)
	} else if err := f.Save(opts.Docset); err != nil {
		return errtrace.Wrap(err)
	}

	if opts.HTML != "" {
		if err := app.renderHTML(opts.HTML, opts.Title, f); err != nil {
			return errtrace.Wrap(fmt.Errorf("render %v: %w", opts.HTML, err))
		}
		app.Log.Printf("Rendered %v", opts.HTML)
	}

	return nil
}

// collectNotes gathers the notes to apply to the docset, in order:
// the builtin set first, then -note flags.
// Builtin notes for identifiers the docset does not declare are skipped;
// a -note flag for an undeclared identifier
// is left in to fail during application.
func (app *applier) collectNotes(f *docfile.File, opts *params) []docnotes.Note {
	var notes []docnotes.Note
	if !opts.NoBuiltin {
		for _, n := range docnotes.Builtin() {
			if _, ok := f.Lookup(n.Name, n.Kind); !ok {
				app.DebugLog.Printf("skipping builtin note for %v %v: not in docset", n.Kind, n.Name)
				continue
			}
			notes = append(notes, n)
		}
	}
	for _, n := range opts.Notes {
		notes = append(notes, docnotes.Note(n))
	}
	return notes
}

func (app *applier) renderHTML(path, title string, f *docfile.File) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, out)

	r := htmlout.Renderer{
		Title:       title,
		Highlighter: &highlight.Highlighter{UseClasses: true},
	}
	return errtrace.Wrap(r.Render(out, f))
}
