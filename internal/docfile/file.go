// Package docfile reads and writes docset files:
// YAML documents holding the documentation text
// for a fixed set of identifiers.
//
// A docset looks like this:
//
//	entries:
//	  - name: sort.Slice
//	    doc: |
//	      Slice sorts the slice x given the provided less function.
//	  - name: http.DefaultClient
//	    kind: variable
//	    doc: |
//	      DefaultClient is the default Client.
//
// The kind defaults to callable when omitted.
package docfile

import (
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"go.abhg.dev/docnotes"
	"go.abhg.dev/docnotes/internal/errdefer"
)

// Entry is the documentation held for a single identifier.
type Entry struct {
	// Name of the identifier.
	Name string `yaml:"name"`

	// Kind of documentation: "callable" or "variable".
	// Empty means callable.
	Kind string `yaml:"kind,omitempty"`

	// Doc is the live documentation text.
	Doc string `yaml:"doc,omitempty"`
}

// DocKind returns the entry's kind as a [docnotes.Kind].
// Entries inside a parsed [File] always have a valid kind.
func (e *Entry) DocKind() docnotes.Kind {
	k, err := docnotes.ParseKind(e.Kind)
	if err != nil {
		// Parse rejects files with invalid kinds,
		// so this only fires on a hand-built Entry.
		panic(err)
	}
	return k
}

// File is a loaded docset.
//
// It implements [docnotes.Registry] over the entries in the file:
// the docset declares which identifiers exist,
// and writes to an undeclared identifier fail.
type File struct {
	// Entries in the order they appear in the file.
	Entries []*Entry `yaml:"entries"`

	index map[fileKey]*Entry
}

var _ docnotes.Registry = (*File)(nil)

type fileKey struct {
	name string
	kind docnotes.Kind
}

// Parse decodes a docset document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse docset: %w", err))
	}
	if err := f.reindex(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &f, nil
}

// Load reads a docset file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", path, err))
	}
	return f, nil
}

func (f *File) reindex() error {
	index := make(map[fileKey]*Entry, len(f.Entries))
	for _, e := range f.Entries {
		if e.Name == "" {
			return fmt.Errorf("docset entry without a name")
		}

		kind, err := docnotes.ParseKind(e.Kind)
		if err != nil {
			return fmt.Errorf("entry %q: %w", e.Name, err)
		}

		key := fileKey{name: e.Name, kind: kind}
		if _, ok := index[key]; ok {
			return fmt.Errorf("duplicate entry for %v %q", kind, e.Name)
		}
		index[key] = e
	}
	f.index = index
	return nil
}

// Lookup returns the documentation text for the identifier,
// and whether the docset declares it.
func (f *File) Lookup(name string, kind docnotes.Kind) (string, bool) {
	e, ok := f.index[fileKey{name: name, kind: kind}]
	if !ok {
		return "", false
	}
	return e.Doc, true
}

// Set replaces the documentation text for the identifier.
// It fails if the docset does not declare the identifier:
// docnotes only augments documentation that already has a home.
func (f *File) Set(name string, kind docnotes.Kind, doc string) error {
	e, ok := f.index[fileKey{name: name, kind: kind}]
	if !ok {
		return errtrace.Wrap(fmt.Errorf("unknown identifier: no %v entry for %q", kind, name))
	}
	e.Doc = doc
	return nil
}

// Encode writes the docset document to the writer.
func (f *File) Encode(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer errdefer.Close(&err, enc)

	return errtrace.Wrap(enc.Encode(f))
}

// Save writes the docset back to disk.
func (f *File) Save(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, out)

	return errtrace.Wrap(f.Encode(out))
}
