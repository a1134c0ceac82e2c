package docnotes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotator_originalIsStable(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "Says hello."))

	ann := Annotator{Registry: &reg}
	assert.Equal(t, "Says hello.", ann.Original("greet", Callable))

	// Mutating the live registry must not move the baseline.
	require.NoError(t, reg.Set("greet", Callable, "Something else entirely."))
	assert.Equal(t, "Says hello.", ann.Original("greet", Callable))
}

func TestAnnotator_append(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	ann := Annotator{Registry: &reg}
	require.NoError(t, ann.Append("greet", Callable, "X"))

	doc, ok := reg.Lookup("greet", Callable)
	require.True(t, ok)
	assert.Equal(t, "AX", doc)
}

func TestAnnotator_appendAccumulates(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	ann := Annotator{Registry: &reg}
	require.NoError(t, ann.Append("greet", Callable, "X"))
	require.NoError(t, ann.Append("greet", Callable, "Y"))

	doc, _ := reg.Lookup("greet", Callable)
	assert.Equal(t, "AXY", doc,
		"second append should extend the live text, not the baseline")
	assert.Equal(t, "A", ann.Original("greet", Callable),
		"baseline should be untouched by appends")
}

func TestAnnotator_emptyBaseline(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	ann := Annotator{Registry: &reg}

	assert.Equal(t, "", ann.Original("foo", Callable))
	require.NoError(t, ann.Append("foo", Callable, "\n\nExample: foo(1)"))

	doc, ok := reg.Lookup("foo", Callable)
	require.True(t, ok)
	assert.Equal(t, "\n\nExample: foo(1)", doc)
	assert.Equal(t, "", ann.Original("foo", Callable),
		"baseline for an undocumented identifier stays empty")
}

func TestAnnotator_kindIsolation(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("timeout", Callable, "call doc"))
	require.NoError(t, reg.Set("timeout", Variable, "var doc"))

	ann := Annotator{Registry: &reg}
	require.NoError(t, ann.Append("timeout", Callable, " more"))

	doc, _ := reg.Lookup("timeout", Variable)
	assert.Equal(t, "var doc", doc,
		"appending callable documentation must not touch the variable slot")

	require.NoError(t, ann.Append("timeout", Variable, " extra"))
	doc, _ = reg.Lookup("timeout", Callable)
	assert.Equal(t, "call doc more", doc)
	doc, _ = reg.Lookup("timeout", Variable)
	assert.Equal(t, "var doc extra", doc)
}

func TestAnnotator_annotateConverges(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	ann := Annotator{Registry: &reg}
	for range 3 {
		require.NoError(t, ann.Annotate("greet", Callable, "X"))
	}

	doc, _ := reg.Lookup("greet", Callable)
	assert.Equal(t, "AX", doc, "annotate should be idempotent")
}

func TestAnnotator_annotateSurvivesRestart(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	// First process run.
	ann := Annotator{Registry: &reg}
	require.NoError(t, ann.Annotate("greet", Callable, "X"))

	// A fresh annotator sees the augmented text as its baseline,
	// but recognizes the note is already there.
	fresh := Annotator{Registry: &reg}
	require.NoError(t, fresh.Annotate("greet", Callable, "X"))

	doc, _ := reg.Lookup("greet", Callable)
	assert.Equal(t, "AX", doc)
}

func TestAnnotator_annotateAfterLiveMutation(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	ann := Annotator{Registry: &reg}
	require.NoError(t, ann.Annotate("greet", Callable, "X"))

	// A write that bypasses the annotator is discarded
	// by the next annotation: the baseline wins.
	require.NoError(t, reg.Set("greet", Callable, "clobbered"))
	require.NoError(t, ann.Annotate("greet", Callable, "X"))

	doc, _ := reg.Lookup("greet", Callable)
	assert.Equal(t, "AX", doc)
}

func TestAnnotator_apply(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	require.NoError(t, reg.Set("greet", Callable, "A"))

	ann := Annotator{Registry: &reg}
	notes := []Note{
		{Name: "greet", Text: "X"},
		{Name: "greet", Text: "Y"},
		{Name: "farewell", Text: "Z"},
	}
	require.NoError(t, ann.Apply(notes))

	doc, _ := reg.Lookup("greet", Callable)
	assert.Equal(t, "AXY", doc, "notes for the same identifier stack in order")

	doc, _ = reg.Lookup("farewell", Callable)
	assert.Equal(t, "Z", doc)

	// A second pass over the same notes changes nothing.
	require.NoError(t, ann.Apply(notes))
	doc, _ = reg.Lookup("greet", Callable)
	assert.Equal(t, "AXY", doc)
}

// errRegistry rejects all writes.
type errRegistry struct {
	MapRegistry

	err error
}

func (r *errRegistry) Set(string, Kind, string) error { return r.err }

func TestAnnotator_registryErrors(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	reg := errRegistry{err: giveErr}
	ann := Annotator{Registry: &reg}

	assert.ErrorIs(t, ann.Append("greet", Callable, "X"), giveErr)
	assert.ErrorIs(t, ann.Annotate("greet", Callable, "X"), giveErr)

	err := ann.Apply([]Note{{Name: "greet", Text: "X"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, giveErr)
	assert.ErrorContains(t, err, "annotate callable greet")
}

func TestMapRegistry_zeroValue(t *testing.T) {
	t.Parallel()

	var reg MapRegistry
	_, ok := reg.Lookup("anything", Callable)
	assert.False(t, ok)

	require.NoError(t, reg.Set("anything", Variable, "doc"))
	doc, ok := reg.Lookup("anything", Variable)
	require.True(t, ok)
	assert.Equal(t, "doc", doc)
}
