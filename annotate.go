// Package docnotes appends usage examples and reference links
// to the documentation of identifiers held in a documentation registry.
//
// The package does not own the documentation store.
// Callers inject any [Registry] implementation,
// and an [Annotator] layered on top of it
// remembers the original text of every identifier it touches
// so that the baseline survives any number of later changes.
package docnotes

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Annotator adds text to documentation held in a [Registry].
//
// Before its first write to an identifier's documentation,
// the Annotator captures the text the identifier had at that moment.
// That baseline is kept for the lifetime of the Annotator
// and is never overwritten,
// no matter how the live registry changes afterwards.
//
// An Annotator is not safe for concurrent use:
// the capture-baseline-then-write sequence is not atomic.
type Annotator struct {
	// Registry holds the live documentation text.
	Registry Registry

	baseline map[docKey]string
}

// Original returns the documentation text the identifier had
// before this Annotator first touched it.
//
// The first call for a given (name, kind) pair
// reads the live registry and records the result;
// an identifier without documentation records the empty string.
// Every later call returns the recorded text,
// regardless of intervening writes to the registry.
func (a *Annotator) Original(name string, kind Kind) string {
	key := docKey{name, kind}
	if doc, ok := a.baseline[key]; ok {
		return doc
	}

	// Absent documentation is the empty string, not a sentinel,
	// so concatenation is always well-defined.
	doc, _ := a.Registry.Lookup(name, kind)
	if a.baseline == nil {
		a.baseline = make(map[docKey]string)
	}
	a.baseline[key] = doc
	return doc
}

// Append concatenates extra onto the identifier's live documentation text
// and writes the result back to the registry.
//
// Appending twice accumulates both texts:
// after Append(X) and Append(Y) on original text A,
// the registry reads AXY.
// The baseline recorded by [Annotator.Original] stays A throughout.
// Use [Annotator.Annotate] instead when the same text
// may be applied more than once.
func (a *Annotator) Append(name string, kind Kind, extra string) error {
	// Capture the baseline before the first write.
	a.Original(name, kind)

	live, _ := a.Registry.Lookup(name, kind)
	return errtrace.Wrap(a.Registry.Set(name, kind, live+extra))
}

// Annotate sets the identifier's live documentation text
// to its baseline followed by extra.
//
// Unlike [Annotator.Append], repeated calls with the same arguments
// converge on the same text instead of growing it without bound.
// This holds even when the registry outlives the Annotator:
// if the live text already ends with extra,
// an earlier annotation is assumed and nothing is written.
func (a *Annotator) Annotate(name string, kind Kind, extra string) error {
	baseline := a.Original(name, kind)
	if live, _ := a.Registry.Lookup(name, kind); strings.HasSuffix(live, extra) {
		return nil
	}
	return errtrace.Wrap(a.Registry.Set(name, kind, baseline+extra))
}

// Apply annotates every identifier named in notes.
//
// Notes that share an identifier and kind are concatenated in order
// and written in a single annotation,
// so applying the same note set twice leaves the registry unchanged.
// The first registry error stops the run.
func (a *Annotator) Apply(notes []Note) error {
	var order []docKey
	texts := make(map[docKey]string, len(notes))
	for _, n := range notes {
		key := docKey{n.Name, n.Kind}
		if _, ok := texts[key]; !ok {
			order = append(order, key)
		}
		texts[key] += n.Text
	}

	for _, key := range order {
		if err := a.Annotate(key.name, key.kind, texts[key]); err != nil {
			return errtrace.Wrap(fmt.Errorf("annotate %v %v: %w", key.kind, key.name, err))
		}
	}
	return nil
}
